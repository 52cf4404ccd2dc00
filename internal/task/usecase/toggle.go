package usecase

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/repository"
)

// Toggle flips the done flag of one task.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	current, err := uc.repo.GetTask(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle.GetTask: user=%s id=%s: %v", sc.UserID, id, err)
		return model.Task{}, err
	}
	if current.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateDone(ctx, repository.UpdateDoneOptions{
		UserID: sc.UserID,
		ID:     id,
		Done:   !current.Done,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle.UpdateDone: user=%s id=%s: %v", sc.UserID, id, err)
		return model.Task{}, err
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	uc.notify(sc.UserID)
	return updated, nil
}

// Delete removes one task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	deleted, err := uc.repo.DeleteTask(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete.DeleteTask: user=%s id=%s: %v", sc.UserID, id, err)
		return err
	}
	if !deleted {
		return task.ErrTaskNotFound
	}

	uc.notify(sc.UserID)
	return nil
}
