package usecase

import (
	"fmt"
	"math/rand/v2"

	"nexstock/internal/shipment"
	"nexstock/internal/shipment/repository"
	"nexstock/pkg/log"
)

type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	trackingID func() string
}

// New creates a new shipment UseCase.
func New(repo repository.Repository, l log.Logger) shipment.UseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		trackingID: randomTrackingID,
	}
}

func randomTrackingID() string {
	return fmt.Sprintf("TRK-%06d", rand.IntN(1_000_000))
}
