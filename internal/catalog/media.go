package catalog

import (
	"sort"
	"strings"
)

const carouselPrefix = "carousel_album_"

// Métricas de insights suportadas por tipo de mídia
var mediaMetrics = map[string][]string{
	"IMAGE":          {"engagement", "impressions", "reach", "saved"},
	"VIDEO":          {"engagement", "impressions", "reach", "saved", "video_views"},
	"CAROUSEL_ALBUM": {"carousel_album_engagement", "carousel_album_impressions", "carousel_album_reach", "carousel_album_saved"},
	"REELS":          {"reach", "saved", "video_views"},
}

// MediaMetrics retorna uma cópia das métricas aceitas para o tipo de mídia.
// ok é falso para tipos fora do catálogo.
func MediaMetrics(mediaType string) ([]string, bool) {
	m, ok := mediaMetrics[strings.ToUpper(mediaType)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), m...), true
}

func MediaTypes() []string {
	types := make([]string, 0, len(mediaMetrics))
	for t := range mediaMetrics {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// NormalizeMediaMetric remove o prefixo de álbum para mapear no mesmo campo
func NormalizeMediaMetric(name string) string {
	return strings.TrimPrefix(name, carouselPrefix)
}
