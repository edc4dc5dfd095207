package usecase

import (
	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	targets []*model.Target
	policy  model.ScanPolicy
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients, targets []*model.Target, policy model.ScanPolicy) *UseCase {
	if policy.FetchLimit <= 0 {
		policy.FetchLimit = model.DefaultFetchLimit
	}
	if policy.MaxBlobSize <= 0 {
		policy.MaxBlobSize = model.DefaultMaxBlobSize
	}

	return &UseCase{
		clients: clients,
		targets: targets,
		policy:  policy,
	}
}
