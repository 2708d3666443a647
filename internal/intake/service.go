package intake

import (
	"context"
	"strings"

	"resume-annex/internal/shared/metrics"
	"resume-annex/internal/shared/telemetry"
)

// Fixed upload replies. Deterministic on purpose: the upload endpoint must
// behave identically whether or not a generation credential is present.
const (
	uploadAckReply   = "Thanks, I have read through your resume. I will ask a few short questions to close the gaps I found. Ready when you are."
	uploadEmptyReply = "I could not read any text from that file. Please paste your resume text directly into the chat and we will start from there."
)

// ArtifactRecord is what the service hands to persistence after a successful
// synthesis.
type ArtifactRecord struct {
	UserID        string
	Plan          string
	Content       string
	QuestionCount int
}

// ArtifactRecorder persists finished artifacts. Optional: a nil recorder
// means the client keeps sole custody of the document.
type ArtifactRecorder interface {
	Record(ctx context.Context, rec ArtifactRecord) (string, error)
}

// Service orchestrates the intake conversation: evaluation, one turn of
// dialogue, or terminal synthesis. Stateless between calls; the caller carries
// the context, history and counter.
type Service struct {
	Builder  ContextBuilder
	Policy   Policy
	Driver   Driver
	Synth    Synthesizer
	Closings ClosingMessages
	Recorder ArtifactRecorder
}

// BeginResult is the outcome of capturing an uploaded source document.
type BeginResult struct {
	Reply          string
	InitialContext string
}

// Begin builds the durable interview context from extracted source text and
// picks the deterministic first reply. Empty text does not fail: the reply
// asks the user to paste text instead.
func (s *Service) Begin(text string) BeginResult {
	res := BeginResult{
		Reply:          uploadAckReply,
		InitialContext: s.Builder.Build(text),
	}
	if strings.TrimSpace(text) == "" {
		res.Reply = uploadEmptyReply
	}
	return res
}

// ConverseInput is one stateless chat call: the round-tripped context, the
// full history, the caller-carried counter, and the session plan.
type ConverseInput struct {
	Context       string
	History       []Turn
	QuestionCount int
	Plan          Plan
	UserID        string
}

// ConverseOutput is the result of one chat call.
type ConverseOutput struct {
	State         State
	Reply         string
	QuestionCount int
	Artifact      string
}

// Converse evaluates the state machine exactly once and either advances the
// dialogue or synthesizes the final artifact. The counter is incremented only
// after a successful generation, so a failed call can be retried unchanged.
func (s *Service) Converse(ctx context.Context, in ConverseInput) (ConverseOutput, error) {
	state := s.Policy.Evaluate(in.History, in.QuestionCount)

	if state == StateActive {
		turn, err := s.Driver.Advance(ctx, in.Context, in.History)
		if err != nil {
			return ConverseOutput{}, err
		}
		metrics.IncInterviewTurn()
		return ConverseOutput{
			State:         StateActive,
			Reply:         turn.Content,
			QuestionCount: in.QuestionCount + 1,
		}, nil
	}

	started := metrics.NowMillis()
	artifact, err := s.Synth.Synthesize(ctx, in.Context, in.History)
	if err != nil {
		metrics.IncSynthesisFailed()
		return ConverseOutput{}, err
	}
	metrics.ObserveSynthesisDurationMs(metrics.NowMillis() - started)
	metrics.IncInterviewCompleted()

	s.record(ctx, in, artifact)

	return ConverseOutput{
		State:         StateTerminal,
		Reply:         s.Closings.For(in.Plan),
		QuestionCount: in.QuestionCount,
		Artifact:      artifact,
	}, nil
}

// record persists the artifact when a recorder is wired. Persistence is
// best-effort: the client already holds the document in the response, so a
// storage failure is logged and the call still succeeds.
func (s *Service) record(ctx context.Context, in ConverseInput, artifact string) {
	if s.Recorder == nil {
		return
	}
	id, err := s.Recorder.Record(ctx, ArtifactRecord{
		UserID:        in.UserID,
		Plan:          string(in.Plan),
		Content:       artifact,
		QuestionCount: in.QuestionCount,
	})
	if err != nil {
		telemetry.Warn("intake.artifact_record_failed", map[string]any{
			"err":  err.Error(),
			"plan": string(in.Plan),
		})
		return
	}
	telemetry.Info("intake.artifact_recorded", map[string]any{
		"artifact_id": id,
		"plan":        string(in.Plan),
	})
}
