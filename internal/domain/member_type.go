package domain

// MemberType is a row of the fixed membership table referenced by profiles.
// Its id is a short name such as "basic", not a UUID.
type MemberType struct {
	ID              string `json:"id"`
	Discount        int    `json:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit"`
}

func (m MemberType) GetID() string { return m.ID }

func (m MemberType) WithID(id string) MemberType {
	m.ID = id
	return m
}

func (m MemberType) Clone() MemberType { return m }

func (m MemberType) Field(key string) (any, bool) {
	switch key {
	case "id":
		return m.ID, true
	case "discount":
		return m.Discount, true
	case "monthPostsLimit":
		return m.MonthPostsLimit, true
	}
	return nil, false
}

type MemberTypePatch struct {
	Discount        *int
	MonthPostsLimit *int
}

func (p MemberTypePatch) Apply(m *MemberType) {
	if p.Discount != nil {
		m.Discount = *p.Discount
	}
	if p.MonthPostsLimit != nil {
		m.MonthPostsLimit = *p.MonthPostsLimit
	}
}

const (
	MemberTypeBasic    = "basic"
	MemberTypeBusiness = "business"
)

// DefaultMemberTypes is the membership table the server starts with.
func DefaultMemberTypes() []MemberType {
	return []MemberType{
		{ID: MemberTypeBasic, Discount: 0, MonthPostsLimit: 20},
		{ID: MemberTypeBusiness, Discount: 5, MonthPostsLimit: 100},
	}
}
