package reporting

import (
	"strings"

	"github.com/almakhzan/warehouse-api/internal/domain/report"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// Directory nombres de presentación de contrapartes, precompuestos desde la
// jerarquía de ubicaciones y los proveedores. Snapshot en memoria: búsquedas
// O(1), una por item durante la agregación. Ids desconocidos o ausentes
// resuelven a un marcador determinista, nunca a error.
type Directory struct {
	clientFullNames map[string]string
	supplierNames   map[string]string
}

// BuildDirectory carga provincias, áreas, clientes y proveedores y compone el
// nombre jerárquico completo de cada cliente: "Provincia / Área / Cliente".
// Eslabones rotos de la jerarquía se omiten del nombre compuesto.
func BuildDirectory(locationRepo repository.LocationRepository, supplierRepo repository.SupplierRepository) (*Directory, error) {
	d := &Directory{
		clientFullNames: map[string]string{},
		supplierNames:   map[string]string{},
	}

	provinces, err := locationRepo.ListProvinces()
	if err != nil {
		return nil, err
	}
	provinceNames := make(map[string]string, len(provinces))
	for _, p := range provinces {
		provinceNames[p.ID] = p.Name
	}

	areas, err := locationRepo.ListAreas("")
	if err != nil {
		return nil, err
	}
	areaNames := make(map[string]string, len(areas))
	areaProvince := make(map[string]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Name
		areaProvince[a.ID] = a.ProvinceID
	}

	clients, err := locationRepo.ListClients("")
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		parts := make([]string, 0, 3)
		if pn := provinceNames[areaProvince[c.AreaID]]; pn != "" {
			parts = append(parts, pn)
		}
		if an := areaNames[c.AreaID]; an != "" {
			parts = append(parts, an)
		}
		parts = append(parts, c.Name)
		d.clientFullNames[c.ID] = strings.Join(parts, " / ")
	}

	suppliers, err := supplierRepo.List()
	if err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		d.supplierNames[s.ID] = s.Name
	}
	return d, nil
}

// ClientFullName nombre jerárquico completo del cliente, o el marcador.
func (d *Directory) ClientFullName(id string) string {
	if name, ok := d.clientFullNames[id]; ok {
		return name
	}
	return report.Placeholder
}

// SupplierName nombre del proveedor, o el marcador.
func (d *Directory) SupplierName(id string) string {
	if name, ok := d.supplierNames[id]; ok {
		return name
	}
	return report.Placeholder
}
