package eval_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
	"github.com/akolanti/GoFaqRag/internal/eval"
)

// MockRetriever implements retrieval.Retriever
type MockRetriever struct {
	OnRetrieve func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error)
}

func (m *MockRetriever) Retrieve(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
	if m.OnRetrieve != nil {
		return m.OnRetrieve(ctx, query, k)
	}
	return nil, nil
}

func result(source, content string) docModel.RetrievalResult {
	return docModel.RetrievalResult{
		Content: content,
		Meta:    docModel.DocumentMetadata{SourceID: source},
	}
}

func TestRun_AllCorrect(t *testing.T) {
	cases := []docModel.TestCase{
		{Question: "q1", SourceDocument: "a.pdf", ExpectedAnswer: "RM7"},
		{Question: "q2", SourceDocument: "b.pdf", ExpectedAnswer: "RM20"},
	}
	retriever := &MockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			if query == "q1" {
				return []docModel.RetrievalResult{result("a.pdf", "the pass costs rm7 monthly")}, nil
			}
			return []docModel.RetrievalResult{result("other.pdf", "noise"), result("b.pdf", "rebate of rm20 applies")}, nil
		},
	}

	report, err := eval.NewHarness(retriever).Run(context.Background(), cases, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.RecallAtK != 1.0 {
		t.Errorf("expected recall 1.0, got %v", report.RecallAtK)
	}
	if report.CorrectRetrievals != 2 {
		t.Errorf("expected 2 correct retrievals, got %d", report.CorrectRetrievals)
	}
	if report.PerQuestion[0].Position != 1 || report.PerQuestion[1].Position != 2 {
		t.Errorf("positions wrong: %d, %d", report.PerQuestion[0].Position, report.PerQuestion[1].Position)
	}
	if report.AnswerInContextRate == nil || *report.AnswerInContextRate != 1.0 {
		t.Errorf("expected answer-in-context rate 1.0, got %v", report.AnswerInContextRate)
	}
}

func TestRun_Miss(t *testing.T) {
	cases := []docModel.TestCase{
		{Question: "q1", SourceDocument: "right.pdf"},
	}
	retriever := &MockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			return []docModel.RetrievalResult{result("wrong.pdf", "irrelevant")}, nil
		},
	}

	report, err := eval.NewHarness(retriever).Run(context.Background(), cases, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.RecallAtK != 0 {
		t.Errorf("expected recall 0, got %v", report.RecallAtK)
	}
	outcome := report.PerQuestion[0]
	if outcome.Correct || outcome.Position != 0 {
		t.Errorf("miss must record Correct=false Position=0, got %+v", outcome)
	}
	if len(outcome.RetrievedSources) != 1 || outcome.RetrievedSources[0] != "wrong.pdf" {
		t.Errorf("retrieved sources not recorded: %v", outcome.RetrievedSources)
	}
	if report.AnswerInContextRate != nil {
		t.Errorf("no expected answers given, rate must be nil")
	}
}

func TestRun_AnswerMatchIsCaseInsensitive(t *testing.T) {
	cases := []docModel.TestCase{
		{Question: "q", SourceDocument: "a.pdf", ExpectedAnswer: "Sahur Pass RM7"},
	}
	retriever := &MockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			return []docModel.RetrievalResult{result("a.pdf", "offers include SAHUR PASS rm7 for everyone")}, nil
		},
	}

	report, err := eval.NewHarness(retriever).Run(context.Background(), cases, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.PerQuestion[0].AnswerInContext {
		t.Error("expected case-insensitive answer match")
	}
}

func TestRun_AnswerRateCountsUnlabelledCases(t *testing.T) {
	cases := []docModel.TestCase{
		{Question: "q1", SourceDocument: "a.pdf", ExpectedAnswer: "RM7"},
		{Question: "q2", SourceDocument: "b.pdf"},
	}
	retriever := &MockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			return []docModel.RetrievalResult{result("a.pdf", "the pass costs rm7 monthly")}, nil
		},
	}

	report, err := eval.NewHarness(retriever).Run(context.Background(), cases, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.AnswerInContextRate == nil {
		t.Fatal("one case is labelled, rate must be reported")
	}
	if *report.AnswerInContextRate != 0.5 {
		t.Errorf("expected rate 0.5 over all cases, got %v", *report.AnswerInContextRate)
	}
}

func TestRun_AnswerMustSitInsideOneChunk(t *testing.T) {
	cases := []docModel.TestCase{
		{Question: "q", SourceDocument: "a.pdf", ExpectedAnswer: "rebate of\nrm20"},
	}
	retriever := &MockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			return []docModel.RetrievalResult{
				result("a.pdf", "customers get a rebate of"),
				result("a.pdf", "rm20 on the next bill"),
			}, nil
		},
	}

	report, err := eval.NewHarness(retriever).Run(context.Background(), cases, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.PerQuestion[0].AnswerInContext {
		t.Error("answer stitched across chunk boundaries must not count as a match")
	}
	if *report.AnswerInContextRate != 0 {
		t.Errorf("expected rate 0, got %v", *report.AnswerInContextRate)
	}
}

func TestRun_RetrievalErrorFailsRun(t *testing.T) {
	wantErr := errors.New("backend down")
	retriever := &MockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			return nil, wantErr
		},
	}

	_, err := eval.NewHarness(retriever).Run(context.Background(), eval.TestQuestions[:1], 3)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected retrieval error to fail the run, got %v", err)
	}
}

func TestRun_EmptyCases(t *testing.T) {
	report, err := eval.NewHarness(&MockRetriever{}).Run(context.Background(), nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalQuestions != 0 || report.RecallAtK != 0 {
		t.Errorf("empty run should report zeros, got %+v", report)
	}
}

func TestRun_DefaultsKWhenNonPositive(t *testing.T) {
	var seenK int
	retriever := &MockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			seenK = k
			return nil, nil
		},
	}

	report, err := eval.NewHarness(retriever).Run(context.Background(), eval.TestQuestions[:1], 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenK != 3 || report.K != 3 {
		t.Errorf("expected default k=3, retriever saw %d, report.K=%d", seenK, report.K)
	}
}

func TestRun_RecallGrowsWithK(t *testing.T) {
	cases := []docModel.TestCase{
		{Question: "q1", SourceDocument: "deep.pdf"},
		{Question: "q2", SourceDocument: "top.pdf"},
	}
	corpus := []docModel.RetrievalResult{
		result("top.pdf", "first"),
		result("mid.pdf", "second"),
		result("deep.pdf", "third"),
	}
	retriever := &MockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			if k > len(corpus) {
				k = len(corpus)
			}
			return corpus[:k], nil
		},
	}

	narrow, err := eval.NewHarness(retriever).Run(context.Background(), cases, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wide, err := eval.NewHarness(retriever).Run(context.Background(), cases, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if narrow.RecallAtK != 0.5 {
		t.Errorf("expected recall 0.5 at k=1, got %v", narrow.RecallAtK)
	}
	if wide.RecallAtK != 1.0 {
		t.Errorf("expected recall 1.0 at k=3, got %v", wide.RecallAtK)
	}
	if wide.RecallAtK < narrow.RecallAtK {
		t.Errorf("recall shrank as k grew: %v -> %v", narrow.RecallAtK, wide.RecallAtK)
	}
}

func TestWriteReport_Layout(t *testing.T) {
	rate := 0.5
	report := docModel.EvaluationReport{
		RecallAtK:           0.5,
		AnswerInContextRate: &rate,
		TotalQuestions:      2,
		CorrectRetrievals:   1,
		K:                   3,
		PerQuestion: []docModel.QuestionOutcome{
			{Question: "hit", ExpectedSource: "a.pdf", Correct: true, Position: 2},
			{Question: "miss", ExpectedSource: "b.pdf", RetrievedSources: []string{"c.pdf"}},
		},
	}

	var sb strings.Builder
	if err := eval.WriteReport(&sb, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"Q1: hit",
		"correct document retrieved (position 2)",
		"Q2: miss",
		"correct document NOT retrieved",
		"  Expected: b.pdf",
		"Recall@3: 0.50 (1/2)",
		"Answer-in-context rate: 0.50",
		"Total questions: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q in:\n%s", want, out)
		}
	}
}
