package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// ReasonUseCase administra los motivos configurables. Los motivos solo
// alimentan selectores y filtros: el agregador de reportes los trata como
// texto opaco.
type ReasonUseCase struct {
	repo repository.ReasonRepository
}

// NewReasonUseCase construye el caso de uso.
func NewReasonUseCase(repo repository.ReasonRepository) *ReasonUseCase {
	return &ReasonUseCase{repo: repo}
}

// Create alta de motivo.
func (uc *ReasonUseCase) Create(in dto.CreateReasonRequest) (*entity.Reason, error) {
	switch in.Kind {
	case entity.ReasonKindPurchase, entity.ReasonKindDispatch, entity.ReasonKindScrap:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	r := &entity.Reason{ID: uuid.New().String(), Kind: in.Kind, Label: in.Label, CreatedAt: time.Now()}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

// List motivos de un tipo (o todos con kind vacío).
func (uc *ReasonUseCase) List(kind string) ([]*entity.Reason, error) {
	return uc.repo.List(kind)
}

// Delete elimina un motivo. Los items existentes conservan el texto que
// capturaron al recibir/despachar.
func (uc *ReasonUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
