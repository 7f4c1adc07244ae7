package response

import (
	"encoding/json"
	"testing"
)

func TestEnvelope_New_SetsStatusFromCode(t *testing.T) {
	env := New(201, "User created successfully")

	if env.Message != "User created successfully" {
		t.Errorf("expected message 'User created successfully', got %s", env.Message)
	}
	if env.Status != "CREATED" {
		t.Errorf("expected status CREATED, got %s", env.Status)
	}
	if env.HTTPStatus() != 201 {
		t.Errorf("expected status 201, got %d", env.HTTPStatus())
	}
	if env.Data != nil {
		t.Errorf("expected no data, got %v", env.Data)
	}
}

func TestEnvelope_WithData_CopiesData(t *testing.T) {
	base := New(200, "User fetched successfully")

	withUser := base.WithData("user", "user-123")

	if base.Data != nil {
		t.Errorf("expected base data untouched, got %v", base.Data)
	}
	if withUser.Data["user"] != "user-123" {
		t.Errorf("expected user user-123, got %v", withUser.Data["user"])
	}

	withExtra := withUser.WithData("extra", 1)

	if len(withUser.Data) != 1 {
		t.Errorf("expected 1 entry in original, got %d", len(withUser.Data))
	}
	if len(withExtra.Data) != 2 {
		t.Errorf("expected 2 entries in copy, got %d", len(withExtra.Data))
	}
}

func TestEnvelope_JSON_OmitsEmptyData(t *testing.T) {
	body, err := json.Marshal(New(404, "User not found"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"message":"User not found","status":"NOT_FOUND"}`
	if string(body) != want {
		t.Errorf("expected %s, got %s", want, string(body))
	}
}

func TestEnvelope_JSON_IncludesData(t *testing.T) {
	env := New(200, "Login successful").WithData("user", map[string]string{"id": "user-123"})

	body, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"message":"Login successful","status":"OK","data":{"user":{"id":"user-123"}}}`
	if string(body) != want {
		t.Errorf("expected %s, got %s", want, string(body))
	}
}

func TestStatusName_KnownCodes(t *testing.T) {
	testCases := []struct {
		code int
		want string
	}{
		{200, "OK"},
		{201, "CREATED"},
		{204, "NO_CONTENT"},
		{400, "BAD_REQUEST"},
		{401, "UNAUTHORIZED"},
		{404, "NOT_FOUND"},
		{405, "METHOD_NOT_ALLOWED"},
		{409, "CONFLICT"},
		{413, "REQUEST_ENTITY_TOO_LARGE"},
		{429, "TOO_MANY_REQUESTS"},
		{500, "INTERNAL_SERVER_ERROR"},
		{503, "SERVICE_UNAVAILABLE"},
	}

	for _, tc := range testCases {
		if got := StatusName(tc.code); got != tc.want {
			t.Errorf("expected %s for %d, got %s", tc.want, tc.code, got)
		}
	}
}

func TestStatusName_Fallback(t *testing.T) {
	if got := StatusName(502); got != "BAD_GATEWAY" {
		t.Errorf("expected BAD_GATEWAY, got %s", got)
	}
	if got := StatusName(999); got != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", got)
	}
}
