package usecase

import (
	"context"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
)

func (uc *implUseCase) GetProfile(ctx context.Context, sc model.Scope) (model.Profile, error) {
	p, err := uc.repo.GetProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetProfile: user=%s: %v", sc.UserID, err)
		return model.Profile{}, err
	}
	if p.Name == "" {
		p.Name = sc.Username
	}
	return p, nil
}

// UpdateProfile overwrites the non-empty fields of input.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input task.UpdateProfileInput) (model.Profile, error) {
	p, err := uc.repo.GetProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile.GetProfile: user=%s: %v", sc.UserID, err)
		return model.Profile{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		p.Name = name
	}
	if pic := strings.TrimSpace(input.ProfilePicture); pic != "" {
		p.ProfilePicture = pic
	}

	if err := uc.repo.UpsertProfile(ctx, sc.UserID, p); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile.UpsertProfile: user=%s: %v", sc.UserID, err)
		return model.Profile{}, err
	}

	uc.notify(sc.UserID)
	return p, nil
}
