package domain

// MaskNotApplicable is the sentinel mask type assigned to trainees in the
// Admin job category, who are exempt from fit testing.
const MaskNotApplicable = "Not Applicable"

// Mask is a respirator catalog entry. Static reference data, immutable at
// runtime.
type Mask struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

var maskCatalog = []Mask{
	{ID: "m1", Name: "3M 1860 (Small)", ImageURL: "https://images.unsplash.com/photo-1584483766114-2cea6facdf57?auto=format&fit=crop&q=80&w=200"},
	{ID: "m2", Name: "3M 1860 (Regular)", ImageURL: "https://images.unsplash.com/photo-1584483766114-2cea6facdf57?auto=format&fit=crop&q=80&w=200"},
	{ID: "m3", Name: "3M 1870+", ImageURL: "https://images.unsplash.com/photo-1584483766114-2cea6facdf57?auto=format&fit=crop&q=80&w=200"},
	{ID: "m4", Name: "Halyard Fluidshield (Orange)", ImageURL: "https://images.unsplash.com/photo-1584483766114-2cea6facdf57?auto=format&fit=crop&q=80&w=200"},
	{ID: "m5", Name: "Gerson 1730", ImageURL: "https://images.unsplash.com/photo-1584483766114-2cea6facdf57?auto=format&fit=crop&q=80&w=200"},
}

// Masks returns the full respirator catalog.
func Masks() []Mask {
	out := make([]Mask, len(maskCatalog))
	copy(out, maskCatalog)
	return out
}

// IsCatalogMask reports whether name matches a catalog entry.
func IsCatalogMask(name string) bool {
	for _, m := range maskCatalog {
		if m.Name == name {
			return true
		}
	}
	return false
}
