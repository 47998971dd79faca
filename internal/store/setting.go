package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/setting"
)

type settingRepo struct {
	client *ent.Client
}

func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	n, err := r.client.Setting.Update().
		Where(setting.Key(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %s: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Setting.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create setting %s: %w", key, err)
	}
	return nil
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query setting %s: %w", key, err)
	}
	return row.Value, nil
}

func (r *settingRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Setting.Delete().
		Where(setting.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}
