package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoaderURL(t *testing.T) {
	assert.Equal(t, "https://www.googletagmanager.com/gtag/js?id=G-354H2J10W6", LoaderURL(MeasurementID))
}

func TestBootstrapScriptCarriesID(t *testing.T) {
	script := BootstrapScript(MeasurementID)
	assert.Contains(t, script, `gtag('config', "G-354H2J10W6");`)
	assert.True(t, strings.HasPrefix(script, "window.dataLayer = window.dataLayer || [];"))
	assert.Equal(t, 1, strings.Count(script, MeasurementID))
}

func TestBootstrapScriptQuotesID(t *testing.T) {
	script := BootstrapScript(`x");alert(1);//`)
	assert.Contains(t, script, `"x\");alert(1);//"`)
}

func TestSourcesIncludeLoaderOrigin(t *testing.T) {
	assert.Contains(t, Sources().Script, "https://www.googletagmanager.com")
}
