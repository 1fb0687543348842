package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"admintools/internal/domain"
	"admintools/internal/domain/entities"
	"admintools/internal/ports/input"
	"admintools/internal/ports/output"
)

var _ input.SmokeUseCase = (*SmokeService)(nil)

// SmokeOptions describes the credentials and the setting exercised by a run.
type SmokeOptions struct {
	Email     string
	Password  string
	Key       string
	TestValue json.RawMessage
}

// StepReporter receives each step as soon as it completes.
type StepReporter func(step entities.StepResult)

type SmokeService struct {
	api    output.SettingsAPI
	opts   SmokeOptions
	report StepReporter
	log    *zap.Logger
}

func NewSmokeService(api output.SettingsAPI, opts SmokeOptions, report StepReporter, log *zap.Logger) *SmokeService {
	if report == nil {
		report = func(entities.StepResult) {}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SmokeService{api: api, opts: opts, report: report, log: log}
}

// Run logs in, reads the setting, updates it, verifies the update and reverts
// it. A failed login aborts with domain.ErrLoginFailed; any later failure is
// recorded and the sequence goes on.
func (s *SmokeService) Run(ctx context.Context) (*entities.SmokeResult, error) {
	result := &entities.SmokeResult{}
	record := func(step entities.StepResult) {
		result.Steps = append(result.Steps, step)
		s.log.Info("smoke step",
			zap.String("step", step.Name),
			zap.Bool("passed", step.Passed),
			zap.Int("status", step.Status),
		)
		s.report(step)
	}

	token, resp, err := s.api.Login(ctx, s.opts.Email, s.opts.Password)
	switch {
	case err != nil:
		record(entities.StepResult{Name: "login", Status: resp.Status, Detail: err.Error()})
		return result, fmt.Errorf("%w: %v", domain.ErrLoginFailed, err)
	case resp.Status != http.StatusCreated || token == "":
		record(entities.StepResult{Name: "login", Status: resp.Status, Detail: string(resp.Body)})
		return result, fmt.Errorf("%w: status %d", domain.ErrLoginFailed, resp.Status)
	}
	record(entities.StepResult{Name: "login", Passed: true, Status: resp.Status})

	original, resp, err := s.api.GetSetting(ctx, token, s.opts.Key)
	readOK := err == nil && resp.Status == http.StatusOK && original != nil
	record(stepOf("read", resp, err, readOK, detailIf(readOK, original)))

	resp, err = s.api.UpdateSetting(ctx, token, s.opts.Key, s.opts.TestValue, "settings smoke test")
	updated := err == nil && isWriteOK(resp.Status)
	record(stepOf("update", resp, err, updated, detailIf(updated, s.opts.TestValue)))

	current, resp, err := s.api.GetSetting(ctx, token, s.opts.Key)
	verified := err == nil && resp.Status == http.StatusOK && jsonEqual(current, s.opts.TestValue)
	detail := detailIf(verified, current)
	if err == nil && resp.Status == http.StatusOK && !verified {
		detail = fmt.Sprintf("%v: got %s, want %s", domain.ErrSettingMismatch, current, s.opts.TestValue)
	}
	record(stepOf("verify", resp, err, verified, detail))

	if !readOK {
		record(entities.StepResult{Name: "revert", Detail: domain.ErrSettingMissing.Error()})
		return result, nil
	}
	resp, err = s.api.UpdateSetting(ctx, token, s.opts.Key, original, "settings smoke test revert")
	reverted := err == nil && isWriteOK(resp.Status)
	record(stepOf("revert", resp, err, reverted, detailIf(reverted, original)))

	return result, nil
}

func stepOf(name string, resp output.Response, err error, passed bool, detail string) entities.StepResult {
	step := entities.StepResult{Name: name, Passed: passed, Status: resp.Status, Detail: detail}
	switch {
	case err != nil:
		step.Detail = err.Error()
	case !passed && detail == "":
		step.Detail = fmt.Sprintf("%v: %d", domain.ErrUnexpectedStatus, resp.Status)
	}
	return step
}

func detailIf(ok bool, value json.RawMessage) string {
	if !ok {
		return ""
	}
	return string(value)
}

func isWriteOK(status int) bool {
	return status == http.StatusOK || status == http.StatusCreated
}

func jsonEqual(a, b json.RawMessage) bool {
	if a == nil || b == nil {
		return false
	}
	var va, vb any
	if err := json.Unmarshal(a, &va); err != nil {
		return bytes.Equal(a, b)
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false
	}
	ja, _ := json.Marshal(va)
	jb, _ := json.Marshal(vb)
	return bytes.Equal(ja, jb)
}
