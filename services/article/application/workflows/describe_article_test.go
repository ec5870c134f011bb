package workflows

import (
	"context"
	"testing"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/converter"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage/memory"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/infrastructure/persistence/slot"
)

type staticDescriber string

func (d staticDescriber) Describe(context.Context, string, string) string { return string(d) }

func newService(t *testing.T) *services.ArticleService {
	t.Helper()
	repo := slot.NewArticleRepository(memory.New(), "wf_slot", logger.NewNop())
	return services.NewArticleService(repo, staticDescriber("Eje roscado M12"), logger.NewNop())
}

func newEnv(t *testing.T, svc *services.ArticleService) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterWorkflowWithOptions(DescribeArticleWorkflow, workflow.RegisterOptions{Name: DescribeArticleWorkflowName})
	env.RegisterActivity(&Activities{Service: svc})
	return env
}

func TestDescribeArticleWorkflow_StoresDescription(t *testing.T) {
	svc := newService(t)
	res, err := svc.Submit(context.Background(), services.SubmitInput{
		ClientID: "001", ClientReferenceCode: "EJE-12", InternalCode: "001-0001",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	env := newEnv(t, svc)
	env.ExecuteWorkflow(DescribeArticleWorkflowName, DescribeArticleInput{ArticleID: res.Article.ID})

	if !env.IsWorkflowCompleted() {
		t.Fatal("workflow did not complete")
	}
	if err := env.GetWorkflowError(); err != nil {
		t.Fatalf("workflow error: %v", err)
	}
	var text string
	if err := env.GetWorkflowResult(&text); err != nil {
		t.Fatalf("result: %v", err)
	}
	if text != "Eje roscado M12" {
		t.Fatalf("result = %q", text)
	}

	stored, err := svc.Get(context.Background(), res.Article.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.AIDescription != "Eje roscado M12" {
		t.Fatalf("AIDescription = %q", stored.AIDescription)
	}
}

func TestDescribeArticleWorkflow_MissingArticleFailsWithoutRetry(t *testing.T) {
	env := newEnv(t, newService(t))

	attempts := 0
	env.SetOnActivityStartedListener(func(_ *activity.Info, _ context.Context, _ converter.EncodedValues) {
		attempts++
	})
	env.ExecuteWorkflow(DescribeArticleWorkflowName, DescribeArticleInput{ArticleID: "missing"})

	if !env.IsWorkflowCompleted() {
		t.Fatal("workflow did not complete")
	}
	if env.GetWorkflowError() == nil {
		t.Fatal("expected workflow error for missing article")
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
}
