package entities

// CatalogEntry is one of the standard work-item categories (travaux standard).
// IDs are stable and never reassigned.
type CatalogEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CatalogSize is the number of standard work items.
const CatalogSize = 27

var catalog = [CatalogSize]CatalogEntry{
	{ID: 1, Name: "Installation de chantier"},
	{ID: 2, Name: "Terrassement"},
	{ID: 3, Name: "Fondations"},
	{ID: 4, Name: "Béton armé"},
	{ID: 5, Name: "Maçonnerie"},
	{ID: 6, Name: "Charpente"},
	{ID: 7, Name: "Couverture"},
	{ID: 8, Name: "Étanchéité"},
	{ID: 9, Name: "Menuiserie bois"},
	{ID: 10, Name: "Menuiserie aluminium"},
	{ID: 11, Name: "Menuiserie métallique"},
	{ID: 12, Name: "Plâtrerie"},
	{ID: 13, Name: "Faux plafond"},
	{ID: 14, Name: "Revêtement de sol"},
	{ID: 15, Name: "Revêtement mural"},
	{ID: 16, Name: "Carrelage"},
	{ID: 17, Name: "Peinture"},
	{ID: 18, Name: "Plomberie sanitaire"},
	{ID: 19, Name: "Électricité"},
	{ID: 20, Name: "Climatisation et ventilation"},
	{ID: 21, Name: "Sécurité incendie"},
	{ID: 22, Name: "Assainissement"},
	{ID: 23, Name: "Voirie et réseaux divers"},
	{ID: 24, Name: "Aménagements extérieurs"},
	{ID: 25, Name: "Ferronnerie"},
	{ID: 26, Name: "Vitrerie"},
	{ID: 27, Name: "Nettoyage et repli de chantier"},
}

// Catalog returns a copy of the standard work items in catalog order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, CatalogSize)
	copy(out, catalog[:])
	return out
}

// CatalogEntryByID returns the entry with the given id.
func CatalogEntryByID(id int) (CatalogEntry, bool) {
	if id < 1 || id > CatalogSize {
		return CatalogEntry{}, false
	}
	return catalog[id-1], true
}
