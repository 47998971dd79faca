package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/internal/interview"
)

type draftRepo struct {
	client *ent.Client
}

func (r *draftRepo) Save(ctx context.Context, d DraftData) error {
	questions, err := json.Marshal(d.Questions)
	if err != nil {
		return fmt.Errorf("marshal draft questions: %w", err)
	}
	metadata, err := json.Marshal(d.Metadata)
	if err != nil {
		return fmt.Errorf("marshal draft metadata: %w", err)
	}
	answers, err := json.Marshal(d.Answers)
	if err != nil {
		return fmt.Errorf("marshal draft answers: %w", err)
	}

	// One draft at a time: replace any previous session's draft.
	if _, err := r.client.Draft.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear old draft: %w", err)
	}

	_, err = r.client.Draft.Create().
		SetSessionID(d.SessionID).
		SetQuestions(questions).
		SetMetadata(metadata).
		SetAnswers(answers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (r *draftRepo) Load(ctx context.Context) (*DraftData, error) {
	row, err := r.client.Draft.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query draft: %w", err)
	}

	d := &DraftData{
		SessionID: row.SessionID,
		UpdatedAt: row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Questions, &d.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal draft questions: %w", err)
	}
	if err := json.Unmarshal(row.Metadata, &d.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal draft metadata: %w", err)
	}
	if len(row.Answers) > 0 {
		if err := json.Unmarshal(row.Answers, &d.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal draft answers: %w", err)
		}
	}
	if d.Answers == nil {
		d.Answers = []interview.Answer{}
	}
	return d, nil
}

func (r *draftRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Draft.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
