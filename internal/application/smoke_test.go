package application

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"admintools/internal/domain"
	"admintools/internal/domain/entities"
	"admintools/internal/ports/output"
)

type fakeSettingsAPI struct {
	loginStatus  int
	loginToken   string
	loginErr     error
	value        json.RawMessage
	getStatus    int
	updateStatus []int
	ignoreUpdate bool

	updates []json.RawMessage
	gets    int
}

func (f *fakeSettingsAPI) Login(context.Context, string, string) (string, output.Response, error) {
	return f.loginToken, output.Response{Status: f.loginStatus}, f.loginErr
}

func (f *fakeSettingsAPI) GetSetting(_ context.Context, token, _ string) (json.RawMessage, output.Response, error) {
	f.gets++
	if token != f.loginToken {
		return nil, output.Response{Status: http.StatusUnauthorized}, nil
	}
	if f.getStatus != http.StatusOK {
		return nil, output.Response{Status: f.getStatus}, nil
	}
	return f.value, output.Response{Status: http.StatusOK}, nil
}

func (f *fakeSettingsAPI) UpdateSetting(_ context.Context, _, _ string, value json.RawMessage, _ string) (output.Response, error) {
	status := http.StatusOK
	if i := len(f.updates); i < len(f.updateStatus) {
		status = f.updateStatus[i]
	}
	f.updates = append(f.updates, value)
	if status == http.StatusOK || status == http.StatusCreated {
		if !f.ignoreUpdate {
			f.value = value
		}
	}
	return output.Response{Status: status}, nil
}

func newFakeAPI() *fakeSettingsAPI {
	return &fakeSettingsAPI{
		loginStatus: http.StatusCreated,
		loginToken:  "tok",
		value:       json.RawMessage(`7`),
		getStatus:   http.StatusOK,
	}
}

func smokeOpts() SmokeOptions {
	return SmokeOptions{Email: "admin@example.com", Password: "secret", Key: "escrow_hold_period_days", TestValue: json.RawMessage(`14`)}
}

func stepNames(r *entities.SmokeResult) []string {
	out := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		out = append(out, s.Name)
	}
	return out
}

func TestSmokeService_HappyPath(t *testing.T) {
	api := newFakeAPI()
	var streamed []entities.StepResult
	svc := NewSmokeService(api, smokeOpts(), func(s entities.StepResult) { streamed = append(streamed, s) }, nil)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Failed() != 0 || result.Passed() != 5 {
		t.Fatalf("steps = %+v", result.Steps)
	}
	if got := stepNames(result); len(got) != 5 || got[0] != "login" || got[4] != "revert" {
		t.Fatalf("unexpected steps %v", got)
	}
	if len(streamed) != 5 {
		t.Fatalf("reporter saw %d steps, want 5", len(streamed))
	}
	if len(api.updates) != 2 || string(api.updates[0]) != "14" || string(api.updates[1]) != "7" {
		t.Fatalf("updates = %s", api.updates)
	}
	if string(api.value) != "7" {
		t.Fatalf("setting not reverted, value = %s", api.value)
	}
}

func TestSmokeService_LoginFailureAborts(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeSettingsAPI
	}{
		{"wrong status", &fakeSettingsAPI{loginStatus: http.StatusUnauthorized}},
		{"ok status without token", &fakeSettingsAPI{loginStatus: http.StatusCreated}},
		{"200 instead of 201", &fakeSettingsAPI{loginStatus: http.StatusOK, loginToken: "tok"}},
		{"transport error", &fakeSettingsAPI{loginErr: errBoom}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSmokeService(tt.api, smokeOpts(), nil, nil)
			result, err := svc.Run(context.Background())
			if !errors.Is(err, domain.ErrLoginFailed) {
				t.Fatalf("expected ErrLoginFailed, got %v", err)
			}
			if len(result.Steps) != 1 || result.Steps[0].Passed {
				t.Fatalf("steps = %+v", result.Steps)
			}
			if tt.api.gets != 0 || len(tt.api.updates) != 0 {
				t.Fatalf("no call may follow a failed login")
			}
		})
	}
}

func TestSmokeService_FailedUpdateContinues(t *testing.T) {
	api := newFakeAPI()
	api.updateStatus = []int{http.StatusBadRequest, http.StatusOK}
	svc := NewSmokeService(api, smokeOpts(), nil, nil)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	byName := map[string]entities.StepResult{}
	for _, s := range result.Steps {
		byName[s.Name] = s
	}
	if byName["update"].Passed || byName["update"].Status != http.StatusBadRequest {
		t.Fatalf("update step = %+v", byName["update"])
	}
	if byName["verify"].Passed {
		t.Fatalf("verify must fail when update failed")
	}
	if !byName["revert"].Passed {
		t.Fatalf("revert step = %+v", byName["revert"])
	}
	if len(result.Steps) != 5 {
		t.Fatalf("steps = %v", stepNames(result))
	}
}

func TestSmokeService_VerifyMismatch(t *testing.T) {
	api := newFakeAPI()
	api.ignoreUpdate = true
	svc := NewSmokeService(api, smokeOpts(), nil, nil)

	result, _ := svc.Run(context.Background())
	verify := result.Steps[3]
	if verify.Name != "verify" || verify.Passed {
		t.Fatalf("verify step = %+v", verify)
	}
	if verify.Detail == "" {
		t.Fatalf("mismatch must be described")
	}
}

func TestSmokeService_ReadFailureSkipsRevert(t *testing.T) {
	api := newFakeAPI()
	api.getStatus = http.StatusNotFound
	svc := NewSmokeService(api, smokeOpts(), nil, nil)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(api.updates) != 1 {
		t.Fatalf("only the test update may be sent, got %d", len(api.updates))
	}
	last := result.Steps[len(result.Steps)-1]
	if last.Name != "revert" || last.Passed {
		t.Fatalf("revert step = %+v", last)
	}
	if result.Steps[1].Detail == "" {
		t.Fatalf("read failure must carry a detail")
	}
}

func TestJSONEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`14`, `14`, true},
		{`14`, `14.0`, true},
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`true`, `false`, false},
		{`"14"`, `14`, false},
	}
	for _, tt := range tests {
		if got := jsonEqual(json.RawMessage(tt.a), json.RawMessage(tt.b)); got != tt.want {
			t.Errorf("jsonEqual(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if jsonEqual(nil, json.RawMessage(`1`)) {
		t.Errorf("nil must not equal a value")
	}
}
