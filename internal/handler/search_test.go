package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homescout/internal/config"
	"homescout/internal/dataset"
	"homescout/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *dataset.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	variants := &strings.Builder{}
	variants.WriteString("id,configurationId,carpetArea,price,bathrooms,propertyImages\n")
	for i := 0; i < 6; i++ {
		fmt.Fprintf(variants, "v%d,c1,%d,%d,2,\n", i, 600+i, 5000000+i*100000)
	}

	files := map[string]string{
		"project.csv": "id,projectName,status,possessionDate,projectSummary\n" +
			"p1,Skyline Heights,READY_TO_MOVE,2024-06-01,Premium towers\n",
		"ProjectAddress.csv": "projectId,fullAddress,pincode\n" +
			"p1,\"Mundhwa, Pune, 411036\",411036\n",
		"ProjectConfiguration.csv": "id,projectId,type,customBHK\n" +
			"c1,p1,2BHK,\n",
		"ProjectConfigurationVariant.csv": variants.String(),
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := dataset.NewStore(dir, dataset.DefaultSourceFiles())
	_, err := store.Reload()
	require.NoError(t, err)

	client := service.NewOpenAIClient(&config.OpenAIConfig{Enabled: false})
	searchService := service.NewSearchService(
		store,
		service.NewQueryEngine(100),
		service.NewFilterExtractor(client, logger),
		service.NewSummarizer(client, logger),
		nil,
		50,
		logger,
	)
	h := NewSearchHandler(searchService, "test", logger)

	router := gin.New()
	router.GET("/", h.Health)
	router.POST("/search", h.Search)
	router.POST("/refresh", h.Refresh)
	return router, store
}

func TestSearchEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	body := strings.NewReader(`{"query": "2BHK in Pune"}`)
	req := httptest.NewRequest(http.MethodPost, "/search", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Query      string                   `json:"query"`
		Filters    map[string]interface{}   `json:"filters"`
		Properties []map[string]interface{} `json:"properties"`
		Summary    string                   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "2BHK in Pune", resp.Query)
	// Without a model the filter object is empty and the engine serves the
	// default prefix.
	require.Len(t, resp.Properties, 6)
	assert.NotEmpty(t, resp.Summary)

	first := resp.Properties[0]
	assert.Equal(t, "Skyline Heights", first["project_name"])
	assert.Equal(t, "2BHK", first["bhk_type"])
	assert.Equal(t, "₹50.00 Lacs", first["formatted_price"])
	assert.Equal(t, "Mundhwa, Pune, 411036", first["full_address"])
	assert.Contains(t, first, "min_price")
	assert.Contains(t, first, "carpet_area")
	assert.Contains(t, first, "possession_date")
	assert.Nil(t, first["image_url"], "absent fields serialize as explicit null")
}

func TestSearchEndpoint_BadRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, true, resp["data_ready"])
	assert.Equal(t, false, resp["nlu_ready"])
	assert.Equal(t, float64(6), resp["listings"])
}

func TestRefreshEndpoint(t *testing.T) {
	router, store := newTestRouter(t)
	before := store.Load()

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotSame(t, before, store.Load(), "refresh swaps in a new snapshot")
}
