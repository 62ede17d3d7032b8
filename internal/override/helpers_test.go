package override

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/TemplateOverrides_Go/internal/document"
	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

func parseJSON(t *testing.T, src string) document.Node {
	t.Helper()
	n, err := document.Parse([]byte(src), document.FormatJSON)
	require.NoError(t, err)
	return n
}

// field returns the node stored under key in an object literal.
func field(t *testing.T, src, key string) document.Node {
	t.Helper()
	n, ok := parseJSON(t, src).Get(key)
	require.True(t, ok, "key %s missing", key)
	return n
}

func curve(delay, duration, fadeOut float64) *domain.EffectCurve {
	return &domain.EffectCurve{Delay: delay, Duration: duration, FadeOut: fadeOut}
}
