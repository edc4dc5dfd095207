package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/commitwatch/pkg/domain/model"
)

type UseCase interface {
	ScanAll(ctx context.Context) error
	ScanTarget(ctx context.Context, target *model.Target) error
}
