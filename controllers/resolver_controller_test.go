package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"als-keeper/internal/config"
	"als-keeper/internal/models"
	"als-keeper/services"

	"github.com/gin-gonic/gin"
)

/**
 * Build a configuration pointing at a test feed and a throwaway install root
 * @param {*testing.T} t - Testing framework instance
 * @param {string} apiBase - Release feed base URL
 * @returns {*config.AppConfig} Configuration ready for the service constructors
 */
func testConfig(t *testing.T, apiBase string) *config.AppConfig {
	t.Helper()
	return &config.AppConfig{
		Release: config.ReleaseConfig{
			Repository: "arduino/arduino-language-server",
			ApiBase:    apiBase,
		},
		LanguageServer: config.LanguageServerConfig{
			Name:       "arduino-language-server",
			InstallDir: t.TempDir(),
		},
	}
}

func newResolverRouter(t *testing.T, cfg *config.AppConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ins := services.NewInstaller(cfg, nil)
	resolver := services.NewResolver(cfg, services.NewReleaseService(cfg), ins, nil)
	router := gin.New()
	NewResolverController(resolver, services.NewCommandService()).RegisterRoutes(router)
	return router
}

func TestResolveBinaryOverride(t *testing.T) {
	// feed不可达也无妨，覆盖路径在一切检查之前返回
	router := newResolverRouter(t, testConfig(t, "http://127.0.0.1:0"))

	body := `{"binary":{"path":"/opt/custom/als"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/als/api/v1/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if response["path"] != "/opt/custom/als" {
		t.Errorf("path = %q, want /opt/custom/als", response["path"])
	}
}

func TestResolveBinaryInvalidBody(t *testing.T) {
	router := newResolverRouter(t, testConfig(t, "http://127.0.0.1:0"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/als/api/v1/resolve", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var response models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if response.Code != "settings.invalid" {
		t.Errorf("code = %q, want settings.invalid", response.Code)
	}
}

func TestSynthesizeCommandOverride(t *testing.T) {
	router := newResolverRouter(t, testConfig(t, "http://127.0.0.1:0"))

	// 三个标志都由用户给出，宿主机状态不会影响结果
	body := `{"binary":{"path":"/opt/custom/als","arguments":["-cli-config","/etc/arduino-cli.yaml","-clangd","/opt/clangd","-cli","/opt/arduino-cli"],"environment":{"FOO":"bar"}}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/als/api/v1/command", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var spec models.CommandSpec
	if err := json.Unmarshal(w.Body.Bytes(), &spec); err != nil {
		t.Fatal(err)
	}
	if spec.Path != "/opt/custom/als" {
		t.Errorf("Path = %q, want /opt/custom/als", spec.Path)
	}
	wantArgs := []string{
		"-cli-config", "/etc/arduino-cli.yaml",
		"-clangd", "/opt/clangd",
		"-cli", "/opt/arduino-cli",
	}
	if !reflect.DeepEqual(spec.Args, wantArgs) {
		t.Errorf("Args = %v, want %v", spec.Args, wantArgs)
	}
	if !reflect.DeepEqual(spec.Env, map[string]string{"FOO": "bar"}) {
		t.Errorf("Env = %v, want the user's environment untouched", spec.Env)
	}
}

func TestWorkspaceConfigurationEcho(t *testing.T) {
	router := newResolverRouter(t, testConfig(t, "http://127.0.0.1:0"))

	original := config.Config.LanguageServer.Settings.Settings
	defer func() { config.Config.LanguageServer.Settings.Settings = original }()

	config.Config.LanguageServer.Settings.Settings = map[string]interface{}{
		"arduino": map[string]interface{}{"path": "/opt"},
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/als/api/v1/configuration", nil))
	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	var echoed map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &echoed); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(echoed, config.Config.LanguageServer.Settings.Settings) {
		t.Errorf("configuration = %v, want the settings object verbatim", echoed)
	}

	// 未配置时必须回空对象而不是null
	config.Config.LanguageServer.Settings.Settings = nil
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/als/api/v1/configuration", nil))
	if w.Body.String() != "{}" {
		t.Errorf("body = %q, want {}", w.Body.String())
	}
}
