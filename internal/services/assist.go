// Package services contains application use cases wired over the ports.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/ports"
)

// ExitDeclined is the process exit code for user-declined and
// no-usable-command conditions.
const ExitDeclined = 1

// Request is one natural-language assist invocation.
type Request struct {
	Task          string
	ContextPrompt string
	Explain       bool
	Alternatives  int
}

// Assist turns a natural-language task into shell commands and drives
// confirmation, execution, failure handling and auto-correction.
type Assist struct {
	Config     domain.Config
	Oracle     ports.Oracle
	Classifier ports.Classifier
	Executor   ports.CommandExecutor
	CommandLog ports.CommandLog
	Audit      ports.AuditStore
	Prompter   ports.Prompter
	Renderer   ports.Renderer
	Log        ports.Logger
}

// Run executes the full assist flow and returns the process exit code.
// Oracle failure degrades to a labeled placeholder command instead of
// aborting, so the user always sees what would have run.
func (a *Assist) Run(ctx context.Context, req Request) (int, error) {
	raw, err := a.Oracle.GenerateCommand(ctx, req.Task, req.ContextPrompt)
	if err != nil {
		a.Renderer.Notice(fmt.Sprintf("Error: %v (model %s, endpoint %s)", err, a.Oracle.Model(), a.Oracle.Endpoint()))
		raw = domain.PlaceholderCommand
	}

	steps, err := domain.SplitPlan(raw)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPlan) {
			a.Renderer.Notice("No usable command was generated.")
			return ExitDeclined, nil
		}
		return ExitDeclined, err
	}

	verdicts := make([]domain.Verdict, len(steps))
	for i, step := range steps {
		verdicts[i] = a.Classifier.Classify(string(step))
	}

	if req.Explain {
		a.explain(ctx, raw)
	}

	if len(steps) == 1 {
		return a.runSingle(ctx, req, steps[0], verdicts[0])
	}
	return a.runSequence(ctx, req, steps, verdicts)
}

// runSingle is the classic one-command flow with the alternatives branch on
// decline and the one-shot auto-correct round on failure.
func (a *Assist) runSingle(ctx context.Context, req Request, step domain.CommandStep, verdict domain.Verdict) (int, error) {
	a.Renderer.ShowCommand(step, verdict)

	approved := a.Config.Safety.Mode == domain.SafetyAutoRunSafe && verdict.Safe
	if !approved {
		ok, err := a.Prompter.Confirm("Execute this command?")
		if err != nil {
			return ExitDeclined, err
		}
		approved = ok
	}

	if !approved {
		picked, pickedVerdict, ok, err := a.pickAlternative(ctx, req)
		if err != nil {
			return ExitDeclined, err
		}
		if !ok {
			a.Renderer.Notice("No command executed.")
			a.record(req.Task, string(step), verdict, nil)
			return ExitDeclined, nil
		}
		step, verdict = picked, pickedVerdict
	}

	res := a.execute(ctx, req.Task, step, verdict)
	if res.Success() {
		return 0, nil
	}

	if res.Stderr != "" && a.Config.Execution.AutoCorrect {
		return a.autoCorrect(ctx, req, step, res)
	}
	return res.ExitCode, nil
}

// runSequence executes a multi-step plan under a single confirmation and
// aborts on the first non-zero exit.
func (a *Assist) runSequence(ctx context.Context, req Request, steps []domain.CommandStep, verdicts []domain.Verdict) (int, error) {
	a.Renderer.ShowSteps(steps, verdicts)

	approved := a.Config.Safety.Mode == domain.SafetyAutoRunSafe && domain.AllSafe(verdicts)
	if !approved {
		ok, err := a.Prompter.Confirm(fmt.Sprintf("Execute all %d commands?", len(steps)))
		if err != nil {
			return ExitDeclined, err
		}
		if !ok {
			for i, step := range steps {
				a.record(req.Task, string(step), verdicts[i], nil)
			}
			return ExitDeclined, nil
		}
	}

	for i, step := range steps {
		res := a.execute(ctx, req.Task, step, verdicts[i])
		if !res.Success() {
			a.Log.Warn("sequence aborted", map[string]interface{}{
				"step":      i + 1,
				"of":        len(steps),
				"exit_code": res.ExitCode,
			})
			return res.ExitCode, nil
		}
	}
	return 0, nil
}

// pickAlternative runs the decline branch: a fresh batch of candidates, each
// with its own verdict, chosen by index.
func (a *Assist) pickAlternative(ctx context.Context, req Request) (domain.CommandStep, domain.Verdict, bool, error) {
	n := req.Alternatives
	if n <= 0 {
		n = a.Config.Execution.Alternatives
	}
	alts, err := a.Oracle.GenerateAlternatives(ctx, req.Task, n)
	if err != nil {
		a.Renderer.Notice(fmt.Sprintf("Error: %v (model %s, endpoint %s)", err, a.Oracle.Model(), a.Oracle.Endpoint()))
		return "", domain.Verdict{}, false, nil
	}

	verdicts := make([]domain.Verdict, len(alts))
	for i, alt := range alts {
		verdicts[i] = a.Classifier.Classify(alt)
	}

	var explanations []string
	if req.Explain {
		explanations = make([]string, len(alts))
		for i, alt := range alts {
			if text, err := a.Oracle.Explain(ctx, alt); err == nil {
				explanations[i] = text
			}
		}
	}
	a.Renderer.ShowAlternatives(alts, verdicts, explanations)

	idx, ok, err := a.Prompter.Select("Pick a command to execute", len(alts))
	if err != nil {
		return "", domain.Verdict{}, false, err
	}
	if !ok {
		return "", domain.Verdict{}, false, nil
	}
	return domain.CommandStep(alts[idx]), verdicts[idx], true, nil
}

// autoCorrect asks for one fixed command after a failure with stderr. The
// fix always requires confirmation and is never itself corrected again.
func (a *Assist) autoCorrect(ctx context.Context, req Request, failed domain.CommandStep, failure domain.ExecutionResult) (int, error) {
	fixed, err := a.Oracle.GenerateFix(ctx, string(failed), failure.Stderr)
	if err != nil {
		a.Renderer.Notice(fmt.Sprintf("Error: %v (model %s, endpoint %s)", err, a.Oracle.Model(), a.Oracle.Endpoint()))
		return failure.ExitCode, nil
	}
	steps, err := domain.SplitPlan(fixed)
	if err != nil {
		return failure.ExitCode, nil
	}
	fix := steps[0]

	verdict := a.Classifier.Classify(string(fix))
	a.Renderer.Notice("Suggested fix:")
	a.Renderer.ShowCommand(fix, verdict)

	ok, err := a.Prompter.Confirm("Execute corrected command?")
	if err != nil {
		return ExitDeclined, err
	}
	if !ok {
		a.record(req.Task, string(fix), verdict, nil)
		return failure.ExitCode, nil
	}

	res := a.execute(ctx, req.Task, fix, verdict)
	return res.ExitCode, nil
}

// execute runs one approved step, renders the outcome and records it.
func (a *Assist) execute(ctx context.Context, task string, step domain.CommandStep, verdict domain.Verdict) domain.ExecutionResult {
	res := a.Executor.Run(ctx, step)
	a.Renderer.ShowExecution(res)
	a.record(task, string(step), verdict, &res)

	if res.Success() {
		if err := a.CommandLog.Append(string(step)); err != nil {
			a.Log.Warn("command log append failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return res
}

func (a *Assist) explain(ctx context.Context, cmd string) {
	explanation, err := a.Oracle.Explain(ctx, cmd)
	if err != nil {
		a.Log.Warn("explanation failed", map[string]interface{}{"error": err.Error()})
		return
	}
	a.Renderer.ShowExplanation(cmd, explanation)
}

// record persists one audit row. A nil result means the command never ran.
func (a *Assist) record(task, cmd string, verdict domain.Verdict, res *domain.ExecutionResult) {
	rec := domain.RunRecord{
		Timestamp: time.Now(),
		Prompt:    task,
		Command:   cmd,
		Model:     a.Oracle.Model(),
		Safe:      verdict.Safe,
		Reason:    verdict.Reason,
	}
	if res != nil {
		rec.Executed = true
		rec.Success = res.Success()
		rec.ExitCode = res.ExitCode
		rec.DurationMS = res.DurationMS
	}
	if err := a.Audit.Save(rec); err != nil {
		a.Log.Warn("audit save failed", map[string]interface{}{"error": err.Error()})
	}
}
