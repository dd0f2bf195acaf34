package template

import (
	"resumeforge/internal/template/native"
)

// Rendering backends a style can select.
const (
	BackendNative = "native"
	BackendMarkup = "markup"
)

// StyleInfo is the caller-facing metadata for one style. Field names and
// presence are a stable contract consumed by the template-browsing UI.
type StyleInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	BestFor      string `json:"best_for"`
	Icon         string `json:"icon"`
	Category     string `json:"category"`
	ATSFriendly  bool   `json:"ats_friendly"`
	PreviewImage string `json:"preview_image"`
}

// StyleEntry is one registry record: the public metadata plus the
// rendering-backend selector and the native renderer constructor. Every
// style carries a native constructor: it is the concrete renderer for
// native-backend styles, and for markup-backend styles that ship no
// skeleton (yuan) the manager dispatches to it instead.
type StyleEntry struct {
	StyleInfo
	Backend     string
	NewRenderer func(themeColor string) native.Renderer
}

// Registry is the immutable style catalog. It is built once at startup
// and injected into the Manager; nothing mutates it afterwards.
type Registry struct {
	entries   map[string]StyleEntry
	order     []string
	defaultID string
}

// NewRegistry builds the catalog of the seven shipped styles. defaultID
// selects the style unknown render ids fall back to; an unknown default
// falls back to auto_cv.
func NewRegistry(defaultID string) *Registry {
	r := &Registry{entries: make(map[string]StyleEntry)}

	for _, entry := range []StyleEntry{
		{
			StyleInfo: StyleInfo{
				ID:          "auto_cv",
				Name:        "Auto CV",
				Description: "Modern, automated, ATS-friendly template with clean design",
				BestFor:     "General applications, ATS systems",
				Icon:        "\U0001F916",
				Category:    "Modern",
				ATSFriendly: true,
			},
			Backend:     BackendMarkup,
			NewRenderer: native.NewAutoCV,
		},
		{
			StyleInfo: StyleInfo{
				ID:          "anti_cv",
				Name:        "Anti CV",
				Description: "Unconventional, creative, story-driven format that stands out",
				BestFor:     "Creative roles, startups, unique positions",
				Icon:        "\U0001F3A8",
				Category:    "Creative",
				ATSFriendly: false,
			},
			Backend:     BackendMarkup,
			NewRenderer: native.NewAntiCV,
		},
		{
			StyleInfo: StyleInfo{
				ID:          "ethan",
				Name:        "Ethan's Resume",
				Description: "Clean, professional, two-column layout for business settings",
				BestFor:     "Business professionals, consultants",
				Icon:        "\U0001F4BC",
				Category:    "Professional",
				ATSFriendly: true,
			},
			Backend:     BackendMarkup,
			NewRenderer: native.NewEthan,
		},
		{
			StyleInfo: StyleInfo{
				ID:          "rendercv_classic",
				Name:        "RenderCV Classic",
				Description: "Academic, traditional, LaTeX-inspired professional format",
				BestFor:     "Academic positions, research roles",
				Icon:        "\U0001F393",
				Category:    "Academic",
				ATSFriendly: true,
			},
			Backend:     BackendNative,
			NewRenderer: native.NewRenderCVClassic,
		},
		{
			StyleInfo: StyleInfo{
				ID:          "rendercv_engineering",
				Name:        "RenderCV Engineering",
				Description: "Skills-first technical format for engineering roles",
				BestFor:     "Software engineers, technical positions",
				Icon:        "⚙️",
				Category:    "Technical",
				ATSFriendly: true,
			},
			Backend:     BackendNative,
			NewRenderer: native.NewRenderCVEngineering,
		},
		{
			StyleInfo: StyleInfo{
				ID:          "rendercv_sb2nov",
				Name:        "RenderCV Sb2nov",
				Description: "Compact, information-dense format tuned for a single page",
				BestFor:     "Experienced candidates with long histories",
				Icon:        "\U0001F4C4",
				Category:    "Compact",
				ATSFriendly: true,
			},
			Backend:     BackendNative,
			NewRenderer: native.NewRenderCVSb2nov,
		},
		{
			StyleInfo: StyleInfo{
				ID:          "yuan",
				Name:        "Yuan's Resume",
				Description: "Minimalist, elegant, sophisticated design for executives",
				BestFor:     "Executive positions, senior roles",
				Icon:        "✨",
				Category:    "Executive",
				ATSFriendly: true,
			},
			Backend:     BackendNative,
			NewRenderer: native.NewYuan,
		},
	} {
		entry.PreviewImage = "/templates/" + entry.ID + ".png"
		r.entries[entry.ID] = entry
		r.order = append(r.order, entry.ID)
	}

	if _, ok := r.entries[defaultID]; !ok {
		defaultID = "auto_cv"
	}
	r.defaultID = defaultID
	return r
}

// Get returns the entry for id.
func (r *Registry) Get(id string) (StyleEntry, bool) {
	entry, ok := r.entries[id]
	return entry, ok
}

// Default returns the entry unknown render ids fall back to.
func (r *Registry) Default() StyleEntry {
	return r.entries[r.defaultID]
}

// List returns the metadata of every style in registration order.
func (r *Registry) List() []StyleInfo {
	infos := make([]StyleInfo, 0, len(r.order))
	for _, id := range r.order {
		infos = append(infos, r.entries[id].StyleInfo)
	}
	return infos
}
