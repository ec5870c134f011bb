// Package workflows holds the Temporal workflows of the article context.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	articledomain "github.com/Tecnic226/Codis-Nous-TM/services/article/domain"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

const (
	// DescribeArticleWorkflowName is the registered workflow type.
	DescribeArticleWorkflowName = "DescribeArticle"

	errTypeArticleNotFound = "ArticleNotFound"
)

// DescribeArticleInput starts a DescribeArticleWorkflow.
type DescribeArticleInput struct {
	ArticleID string        `json:"article_id"`
	Timeout   time.Duration `json:"timeout"` // describer call budget; 0 uses 30s
}

// SaveDescriptionInput is the payload of the SaveDescription activity.
type SaveDescriptionInput struct {
	ArticleID   string `json:"article_id"`
	Description string `json:"description"`
}

// Describer is the slice of ArticleService the activities call.
type Describer interface {
	GenerateDescription(ctx context.Context, id string) (string, error)
	SaveDescription(ctx context.Context, id, text string) (*models.Article, error)
}

// Activities wraps a Describer as Temporal activities.
type Activities struct {
	Service Describer
}

// GenerateDescription produces the description text. A missing article is not retried.
func (a *Activities) GenerateDescription(ctx context.Context, articleID string) (string, error) {
	text, err := a.Service.GenerateDescription(ctx, articleID)
	if err != nil {
		return "", activityError(err)
	}
	return text, nil
}

// SaveDescription stores the text on the article.
func (a *Activities) SaveDescription(ctx context.Context, in SaveDescriptionInput) error {
	if _, err := a.Service.SaveDescription(ctx, in.ArticleID, in.Description); err != nil {
		return activityError(err)
	}
	return nil
}

func activityError(err error) error {
	if errors.Is(err, articledomain.ErrArticleNotFound) {
		return temporal.NewNonRetryableApplicationError(err.Error(), errTypeArticleNotFound, err)
	}
	return err
}

// DescribeArticleWorkflow generates a description for one article and stores it.
// Returns the stored text.
func DescribeArticleWorkflow(ctx workflow.Context, in DescribeArticleInput) (string, error) {
	timeout := in.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: timeout + 5*time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2,
			MaximumAttempts:        3,
			NonRetryableErrorTypes: []string{errTypeArticleNotFound},
		},
	})

	var a *Activities
	var text string
	if err := workflow.ExecuteActivity(ctx, a.GenerateDescription, in.ArticleID).Get(ctx, &text); err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}
	if err := workflow.ExecuteActivity(ctx, a.SaveDescription, SaveDescriptionInput{
		ArticleID:   in.ArticleID,
		Description: text,
	}).Get(ctx, nil); err != nil {
		return "", fmt.Errorf("save description: %w", err)
	}

	workflow.GetLogger(ctx).Info("article described", "article_id", in.ArticleID)
	return text, nil
}

// Register adds the workflow and its activities to w.
func Register(w worker.Registry, acts *Activities) {
	w.RegisterWorkflowWithOptions(DescribeArticleWorkflow, workflow.RegisterOptions{Name: DescribeArticleWorkflowName})
	w.RegisterActivity(acts)
}

// StartDescribeArticle starts the workflow for articleID. The workflow id is
// derived from the article so concurrent starts for one article collapse.
func StartDescribeArticle(ctx context.Context, c client.Client, taskQueue, articleID string, timeout time.Duration) (client.WorkflowRun, error) {
	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        "describe-article-" + articleID,
		TaskQueue: taskQueue,
	}, DescribeArticleWorkflowName, DescribeArticleInput{ArticleID: articleID, Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("start describe workflow: %w", err)
	}
	return run, nil
}
