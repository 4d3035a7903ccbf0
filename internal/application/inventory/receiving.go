package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/bundle"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// ReceivingUseCase registra entradas de inventario: lotes de unidades sueltas
// y recepciones de paquetes (expansión de lista de materiales + seriales
// capturados por el operador). Toda recepción corre en una transacción.
type ReceivingUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	locationRepo repository.LocationRepository
}

// NewReceivingUseCase construye el caso de uso.
func NewReceivingUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	locationRepo repository.LocationRepository,
) *ReceivingUseCase {
	return &ReceivingUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		locationRepo: locationRepo,
	}
}

// ReceiveBatch valida y persiste un lote de unidades sueltas. Reglas:
// líneas no vacías, producto existente y simple por línea, serial no vacío y
// único (dentro del lote y contra el almacén, sin distinguir mayúsculas).
func (uc *ReceivingUseCase) ReceiveBatch(ctx context.Context, userID string, in dto.ReceiveBatchRequest) ([]string, error) {
	if len(in.Lines) == 0 || in.PurchaseDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkCommonRefs(in.SupplierID, in.DestinationClientID); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(in.Lines))
	for _, line := range in.Lines {
		norm := entity.NormalizeSerial(line.SerialNumber)
		if norm == "" || line.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if _, dup := seen[norm]; dup {
			return nil, domain.ErrDuplicateSerial
		}
		seen[norm] = struct{}{}

		p, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		if p.IsBundle() {
			// un paquete no se recibe como unidad suelta
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	ids := make([]string, 0, len(in.Lines))
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.ProductRepository) error {
		for _, line := range in.Lines {
			item, err := uc.buildItem(itemRepo, line, in, now)
			if err != nil {
				return err
			}
			if err := itemRepo.Create(item); err != nil {
				return err
			}
			ids = append(ids, item.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ReceiveBundle expande la lista de materiales del paquete y persiste una
// unidad por línea expandida. Cada repetición del paquete recibe su propio
// BundleGroupID; todas las unidades capturan BundleName y BundleProductID al
// momento de recibir, desacoplados del nombre vivo del producto.
//
// Serials debe traer exactamente una entrada por línea expandida, en el orden
// de expansión (repetición → componente → unidad).
func (uc *ReceivingUseCase) ReceiveBundle(ctx context.Context, userID string, in dto.ReceiveBundleRequest) ([]string, error) {
	if in.BundleCount < 1 || in.PurchaseDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	bundleProduct, err := uc.productRepo.GetByID(in.BundleProductID)
	if err != nil {
		return nil, err
	}
	if bundleProduct == nil {
		return nil, domain.ErrNotFound
	}
	if !bundleProduct.IsBundle() {
		return nil, domain.ErrNotABundle
	}
	if err := uc.checkCommonRefs(in.SupplierID, in.DestinationClientID); err != nil {
		return nil, err
	}

	products, err := uc.productRepo.List("")
	if err != nil {
		return nil, err
	}
	catalog := bundle.NewSnapshot(products)

	lines := bundle.ExpandComponents(catalog, bundleProduct, in.BundleCount)
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Serials) != len(lines) {
		return nil, domain.ErrInvalidInput
	}

	seen := make(map[string]struct{}, len(in.Serials))
	for _, s := range in.Serials {
		norm := entity.NormalizeSerial(s)
		if norm == "" {
			return nil, domain.ErrInvalidInput
		}
		if _, dup := seen[norm]; dup {
			return nil, domain.ErrDuplicateSerial
		}
		seen[norm] = struct{}{}
	}

	perRepetition := len(lines) / in.BundleCount
	now := time.Now()
	ids := make([]string, 0, len(lines))
	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.ProductRepository) error {
		groupID := ""
		for i, line := range lines {
			if i%perRepetition == 0 {
				// nueva instancia del paquete
				groupID = uuid.New().String()
			}
			norm := entity.NormalizeSerial(in.Serials[i])
			existing, err := itemRepo.GetBySerial(norm)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrDuplicateSerial
			}
			item := &entity.InventoryItem{
				ID:                  uuid.New().String(),
				ProductID:           line.ProductID,
				SerialNumber:        in.Serials[i],
				CostPrice:           line.CostPrice,
				Status:              entity.StatusInStock,
				PurchaseDate:        in.PurchaseDate,
				PurchaseReason:      in.PurchaseReason,
				SupplierID:          in.SupplierID,
				DestinationClientID: in.DestinationClientID,
				WarrantyEndDate:     in.WarrantyEndDate,
				BundleGroupID:       groupID,
				BundleName:          bundleProduct.Name,
				BundleProductID:     bundleProduct.ID,
				CreatedAt:           now,
				UpdatedAt:           now,
			}
			if err := itemRepo.Create(item); err != nil {
				return err
			}
			ids = append(ids, item.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// buildItem construye la unidad de una línea suelta, verificando serial
// contra el almacén dentro de la transacción.
func (uc *ReceivingUseCase) buildItem(
	itemRepo repository.ItemRepository,
	line dto.ReceiveLineRequest,
	in dto.ReceiveBatchRequest,
	now time.Time,
) (*entity.InventoryItem, error) {
	norm := entity.NormalizeSerial(line.SerialNumber)
	existing, err := itemRepo.GetBySerial(norm)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSerial
	}
	status := entity.StatusInStock
	if line.DamagedOnArrival {
		status = entity.StatusDamagedOnArrival
	}
	return &entity.InventoryItem{
		ID:                  uuid.New().String(),
		ProductID:           line.ProductID,
		SerialNumber:        line.SerialNumber,
		CostPrice:           line.CostPrice,
		Status:              status,
		PurchaseDate:        in.PurchaseDate,
		PurchaseReason:      in.PurchaseReason,
		SupplierID:          in.SupplierID,
		DestinationClientID: in.DestinationClientID,
		WarrantyEndDate:     line.WarrantyEndDate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// checkCommonRefs verifica que proveedor y cliente destino, si vienen, existan.
func (uc *ReceivingUseCase) checkCommonRefs(supplierID, destinationClientID string) error {
	if supplierID != "" {
		s, err := uc.supplierRepo.GetByID(supplierID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
	}
	if destinationClientID != "" {
		c, err := uc.locationRepo.GetClient(destinationClientID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}
