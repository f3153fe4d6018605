package user

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/service"
	"github.com/wichananm65/social-graph-backend/internal/store"
)

func makeApp(t *testing.T) (*fiber.App, *service.Service) {
	t.Helper()
	st := store.New()
	if err := st.SeedMemberTypes(domain.DefaultMemberTypes()); err != nil {
		t.Fatalf("seed member types: %v", err)
	}
	svc := service.New(st)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res, b
}

func createUser(t *testing.T, app *fiber.App, first string) domain.User {
	t.Helper()
	res, b := do(t, app, "POST", "/users", `{"firstName":"`+first+`","lastName":"Doe","email":"`+strings.ToLower(first)+`@example.com"}`)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 creating user, got %d: %s", res.StatusCode, b)
	}
	var u domain.User
	if err := json.Unmarshal(b, &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return u
}

func TestRoutesRegistered(t *testing.T) {
	app, _ := makeApp(t)

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	for _, want := range []string{
		"GET /users", "POST /users", "GET /users/:id", "PATCH /users/:id", "DELETE /users/:id",
		"POST /users/:id/subscribeTo", "POST /users/:id/unsubscribeFrom",
		"GET /users/:id/subscribers", "GET /users/:id/subscribed-to",
	} {
		if !routes[want] {
			t.Fatalf("expected route %q to be registered", want)
		}
	}
}

func TestCreateAndGetUser(t *testing.T) {
	app, _ := makeApp(t)

	u := createUser(t, app, "Ann")
	if !domain.IsValidUUID(u.ID) {
		t.Fatalf("expected uuid id, got %q", u.ID)
	}
	if u.SubscriberIDs == nil || len(u.SubscriberIDs) != 0 {
		t.Fatalf("expected empty subscriber list, got %v", u.SubscriberIDs)
	}

	res, b := do(t, app, "GET", "/users/"+u.ID, "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if !strings.Contains(string(b), `"subscriberIds":[]`) {
		t.Fatalf("expected empty subscriberIds array in body, got %s", b)
	}

	res, _ = do(t, app, "GET", "/users/"+"00000000-0000-0000-0000-000000000000", "")
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", res.StatusCode)
	}
}

func TestCreateUser_MissingField(t *testing.T) {
	app, _ := makeApp(t)

	res, _ := do(t, app, "POST", "/users", `{"firstName":"Ann","email":"ann@example.com"}`)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing lastName, got %d", res.StatusCode)
	}
}

func TestListUsers_Filter(t *testing.T) {
	app, _ := makeApp(t)
	a := createUser(t, app, "Ann")
	createUser(t, app, "Bob")

	res, b := do(t, app, "GET", "/users?key=firstName&equals=Ann", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var users []domain.User
	if err := json.Unmarshal(b, &users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 1 || users[0].ID != a.ID {
		t.Fatalf("expected only Ann, got %+v", users)
	}

	res, b = do(t, app, "GET", "/users?key=firstName&equals=Zed", "")
	if res.StatusCode != fiber.StatusOK || strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("expected empty list, got %d %s", res.StatusCode, b)
	}
}

func TestUpdateUser(t *testing.T) {
	app, _ := makeApp(t)
	u := createUser(t, app, "Ann")

	res, b := do(t, app, "PATCH", "/users/"+u.ID, `{"lastName":"Smith"}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.StatusCode, b)
	}
	var got domain.User
	_ = json.Unmarshal(b, &got)
	if got.LastName != "Smith" || got.FirstName != "Ann" || got.ID != u.ID {
		t.Fatalf("patch did not merge: %+v", got)
	}

	res, _ = do(t, app, "PATCH", "/users/not-a-uuid", `{"lastName":"Smith"}`)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", res.StatusCode)
	}
	res, _ = do(t, app, "PATCH", "/users/00000000-0000-0000-0000-000000000000", `{"lastName":"Smith"}`)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", res.StatusCode)
	}
}

func TestSubscribeLifecycle(t *testing.T) {
	app, _ := makeApp(t)
	a := createUser(t, app, "Ann")
	b := createUser(t, app, "Bob")

	// Ann subscribes to Bob: Bob's list gains Ann.
	res, body := do(t, app, "POST", "/users/"+a.ID+"/subscribeTo", `{"userId":"`+b.ID+`"}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.StatusCode, body)
	}
	var target domain.User
	_ = json.Unmarshal(body, &target)
	if target.ID != b.ID || len(target.SubscriberIDs) != 1 || target.SubscriberIDs[0] != a.ID {
		t.Fatalf("unexpected target after subscribe: %+v", target)
	}

	_, body = do(t, app, "GET", "/users/"+b.ID+"/subscribers", "")
	if !strings.Contains(string(body), a.ID) {
		t.Fatalf("expected Ann among Bob's subscribers, got %s", body)
	}
	_, body = do(t, app, "GET", "/users/"+a.ID+"/subscribed-to", "")
	if !strings.Contains(string(body), b.ID) {
		t.Fatalf("expected Bob among users Ann subscribed to, got %s", body)
	}
	_, body = do(t, app, "GET", "/users?key=subscriberIds&inArray="+a.ID, "")
	if !strings.Contains(string(body), b.ID) {
		t.Fatalf("expected inArray filter to find Bob, got %s", body)
	}

	res, _ = do(t, app, "POST", "/users/"+a.ID+"/unsubscribeFrom", `{"userId":"`+b.ID+`"}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on unsubscribe, got %d", res.StatusCode)
	}
	res, _ = do(t, app, "POST", "/users/"+a.ID+"/unsubscribeFrom", `{"userId":"`+b.ID+`"}`)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 on second unsubscribe, got %d", res.StatusCode)
	}
}

func TestSubscribe_UnknownUser(t *testing.T) {
	app, _ := makeApp(t)
	a := createUser(t, app, "Ann")

	res, _ := do(t, app, "POST", "/users/"+a.ID+"/subscribeTo", `{"userId":"00000000-0000-0000-0000-000000000000"}`)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	res, _ = do(t, app, "POST", "/users/"+a.ID+"/subscribeTo", `{}`)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing userId, got %d", res.StatusCode)
	}
}

func TestDeleteUser_Cascade(t *testing.T) {
	app, svc := makeApp(t)
	a := createUser(t, app, "Ann")
	b := createUser(t, app, "Bob")
	ctx := t.Context()

	if _, err := svc.Subscribe(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if _, err := svc.CreatePost(ctx, domain.CreatePostInput{Title: "t", Content: "c", UserID: a.ID}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	res, _ := do(t, app, "DELETE", "/users/"+a.ID, "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", res.StatusCode)
	}
	if posts := svc.UserPosts(ctx, a.ID); len(posts) != 0 {
		t.Fatalf("expected posts removed, got %d", len(posts))
	}
	bob, _ := svc.GetUser(ctx, b.ID)
	if bob.HasSubscriber(a.ID) {
		t.Fatalf("expected Ann removed from Bob's subscribers")
	}

	res, _ = do(t, app, "DELETE", "/users/"+a.ID, "")
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 on repeated delete, got %d", res.StatusCode)
	}
	res, _ = do(t, app, "DELETE", "/users/nope", "")
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", res.StatusCode)
	}
}

// Path params are only valid for the request that carried them; stored data
// must not change when later requests reuse the same buffers.
func TestStoredIDsSurviveLaterRequests(t *testing.T) {
	app, _ := makeApp(t)
	a := createUser(t, app, "Ann")
	b := createUser(t, app, "Bob")

	res, body := do(t, app, "POST", "/users/"+a.ID+"/subscribeTo", `{"userId":"`+b.ID+`"}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on subscribe, got %d: %s", res.StatusCode, body)
	}
	res, body = do(t, app, "PATCH", "/users/"+a.ID, `{"lastName":"Smith"}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on patch, got %d: %s", res.StatusCode, body)
	}

	for i := range 40 {
		do(t, app, "GET", fmt.Sprintf("/users/%08d-0000-0000-0000-000000000000", i), "")
		do(t, app, "PATCH", fmt.Sprintf("/users/%08d-0000-0000-0000-000000000000", i), `{"lastName":"x"}`)
	}

	_, body = do(t, app, "GET", "/users/"+b.ID, "")
	var gotB domain.User
	if err := json.Unmarshal(body, &gotB); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(gotB.SubscriberIDs) != 1 || gotB.SubscriberIDs[0] != a.ID {
		t.Fatalf("expected Bob's subscribers to be [%s], got %v", a.ID, gotB.SubscriberIDs)
	}

	res, body = do(t, app, "GET", "/users", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on list, got %d", res.StatusCode)
	}
	var users []domain.User
	if err := json.Unmarshal(body, &users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %+v", users)
	}
	if users[0].ID != a.ID || users[0].FirstName != "Ann" || users[0].LastName != "Smith" {
		t.Fatalf("expected patched Ann first, got %+v", users[0])
	}
	if users[1].ID != b.ID {
		t.Fatalf("expected Bob second, got %+v", users[1])
	}
}
