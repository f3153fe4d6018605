package domain

type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

func (p Post) GetID() string { return p.ID }

func (p Post) WithID(id string) Post {
	p.ID = id
	return p
}

func (p Post) Clone() Post { return p }

func (p Post) Field(key string) (any, bool) {
	switch key {
	case "id":
		return p.ID, true
	case "title":
		return p.Title, true
	case "content":
		return p.Content, true
	case "userId":
		return p.UserID, true
	}
	return nil, false
}

type CreatePostInput struct {
	Title   string
	Content string
	UserID  string
}

// PostPatch updates title and content; a post never changes author.
type PostPatch struct {
	Title   *string
	Content *string
}

func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
}
