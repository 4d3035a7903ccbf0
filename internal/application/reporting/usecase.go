package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/bundle"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/report"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// Result reporte generado: filas ya ordenadas, columnas visibles y suma
// general recalculada del conjunto vigente.
type Result struct {
	Title             string
	CounterpartyLabel string
	Columns           []report.Column
	Rows              []report.Row
	GrandTotal        decimal.Decimal
	Currency          string
}

// UseCase genera los tres reportes del almacén: recepciones, despachos y
// reclamación financiera. Flujo: traer items filtrados del repositorio →
// plegar con el agregador → anotar completitud de paquetes → ordenar →
// recalcular suma general. Derivación pura de view-model: nada se persiste.
type UseCase struct {
	itemRepo     repository.ItemRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	supplierRepo repository.SupplierRepository
	settingsRepo repository.SettingsRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	itemRepo repository.ItemRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	supplierRepo repository.SupplierRepository,
	settingsRepo repository.SettingsRepository,
) *UseCase {
	return &UseCase{
		itemRepo:     itemRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		supplierRepo: supplierRepo,
		settingsRepo: settingsRepo,
	}
}

// Receiving reporte de recepciones en el rango y filtros dados.
func (uc *UseCase) Receiving(ctx context.Context, in dto.ReportFilterRequest) (*Result, error) {
	filter, sortState, err := uc.parseFilter(in, false)
	if err != nil {
		return nil, err
	}
	return uc.generate(ctx, "تقرير الاستلام", "Proveedor", receivingColumns(), filter, sortState,
		func(catalog bundle.Catalog, dir *Directory) report.GroupSpec {
			return receivingSpec(catalog, dir)
		})
}

// Dispatch reporte de despachos: solo unidades dispatched, filtrando por
// fecha de despacho.
func (uc *UseCase) Dispatch(ctx context.Context, in dto.ReportFilterRequest) (*Result, error) {
	filter, sortState, err := uc.parseFilter(in, true)
	if err != nil {
		return nil, err
	}
	if len(filter.Statuses) == 0 {
		filter.Statuses = []string{entity.StatusDispatched}
	}
	return uc.generate(ctx, "تقرير الصرف", "Cliente", dispatchColumns(), filter, sortState,
		func(catalog bundle.Catalog, dir *Directory) report.GroupSpec {
			return dispatchSpec(catalog, dir)
		})
}

// Claim reclamación financiera: agrupa por cliente destino fijado al recibir.
func (uc *UseCase) Claim(ctx context.Context, in dto.ReportFilterRequest) (*Result, error) {
	filter, sortState, err := uc.parseFilter(in, false)
	if err != nil {
		return nil, err
	}
	return uc.generate(ctx, "مطالبة مالية", "Cliente", claimColumns(), filter, sortState,
		func(catalog bundle.Catalog, dir *Directory) report.GroupSpec {
			return claimSpec(catalog, dir)
		})
}

// generate flujo común de los tres reportes.
func (uc *UseCase) generate(
	_ context.Context,
	title, counterpartyLabel string,
	columns []report.Column,
	filter repository.ItemFilter,
	sortState report.SortState,
	specOf func(bundle.Catalog, *Directory) report.GroupSpec,
) (*Result, error) {
	items, err := uc.itemRepo.List(filter)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List("")
	if err != nil {
		return nil, err
	}
	catalog := bundle.NewSnapshot(products)

	dir, err := BuildDirectory(uc.locationRepo, uc.supplierRepo)
	if err != nil {
		return nil, err
	}

	rows := report.Aggregate(items, specOf(catalog, dir))
	annotateBundles(rows, items, catalog)
	report.Sort(rows, sortState)

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:             title,
		CounterpartyLabel: counterpartyLabel,
		Columns:           columns,
		Rows:              rows,
		GrandTotal:        report.GrandTotal(rows),
		Currency:          settings.Currency,
	}, nil
}

// annotateBundles agrega a cada fila de paquete el aviso de completitud,
// separado por salto de línea de cualquier nota previa. Definiciones no
// resolubles no anotan nada.
func annotateBundles(rows []report.Row, items []entity.InventoryItem, catalog bundle.Catalog) {
	var byGroup map[string][]entity.InventoryItem
	for i := range rows {
		if !rows[i].IsBundle() {
			continue
		}
		if byGroup == nil {
			byGroup = make(map[string][]entity.InventoryItem)
			for j := range items {
				if g := items[j].BundleGroupID; g != "" {
					byGroup[g] = append(byGroup[g], items[j])
				}
			}
		}
		warning := bundle.CheckCompleteness(catalog, byGroup[rows[i].BundleGroupID])
		rows[i].Note = bundle.AppendWarning(rows[i].Note, warning)
	}
}

// parseFilter convierte el request en filtro de repositorio + estado de
// ordenamiento. onDispatchDate decide a qué campo de fecha aplica el rango.
func (uc *UseCase) parseFilter(in dto.ReportFilterRequest, onDispatchDate bool) (repository.ItemFilter, report.SortState, error) {
	var filter repository.ItemFilter
	var sortState report.SortState

	from, err := parseDay(in.From, false)
	if err != nil {
		return filter, sortState, domain.ErrInvalidInput
	}
	to, err := parseDay(in.To, true)
	if err != nil {
		return filter, sortState, domain.ErrInvalidInput
	}
	if onDispatchDate {
		filter.DispatchedFrom, filter.DispatchedTo = from, to
	} else {
		filter.PurchasedFrom, filter.PurchasedTo = from, to
	}

	if in.Status != "" {
		filter.Statuses = []string{in.Status}
	}
	filter.SupplierID = in.SupplierID
	filter.Category = in.Category
	filter.ClientID = in.ClientID
	filter.AreaID = in.AreaID
	filter.ProvinceID = in.ProvinceID

	if in.SortColumn != "" {
		col, ok := ParseSortColumn(in.SortColumn)
		if !ok {
			return filter, sortState, domain.ErrInvalidInput
		}
		sortState.Toggle(col)
		if in.SortDesc {
			sortState.Toggle(col)
		}
	}
	return filter, sortState, nil
}

// parseDay interpreta YYYY-MM-DD; endOfDay devuelve 23:59:59.999 del día.
func parseDay(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Millisecond)
	}
	return &t, nil
}
