package bgserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/go-cmp/cmp"
	"github.com/modernice/faux/background"
	"github.com/modernice/faux/background/bgserver"
	"github.com/modernice/faux/background/bgserver/routes"
	"github.com/modernice/faux/internal/imggen"
)

func TestServer_generate(t *testing.T) {
	srv := bgserver.New(background.NewService(nil))

	tests := []struct {
		query       string
		contentType string
		width       int
		height      int
	}{
		{"imgType=png&bgColor=f0c&bgWidth=100&bgHeight=50", "image/png", 100, 50},
		{"imgType=gif&bgColor=000000&bgWidth=20&bgHeight=300&bdLoc=left&bdColor=fff&bdSize=3", "image/gif", 20, 300},
		{"IMGTYPE=JPG&BGCOLOR=ABC&BGWIDTH=8&BGHEIGHT=8", "image/jpg", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/?"+tt.query, nil)

			srv.ServeHTTP(rec, req)

			if rec.Result().StatusCode != http.StatusOK {
				t.Fatalf("Response should have status code %d; has %d", http.StatusOK, rec.Result().StatusCode)
			}

			if ct := rec.Result().Header.Get("Content-Type"); ct != tt.contentType {
				t.Fatalf("Response should have content type %q; has %q", tt.contentType, ct)
			}

			img, err := imaging.Decode(rec.Result().Body)
			if err != nil {
				t.Fatalf("decode response: %v", err)
			}

			if b := img.Bounds(); b.Dx() != tt.width || b.Dy() != tt.height {
				t.Fatalf("image should be %dx%d; is %dx%d", tt.width, tt.height, b.Dx(), b.Dy())
			}
		})
	}
}

func TestServer_generate_pixels(t *testing.T) {
	srv := bgserver.New(background.NewService(nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?imgType=png&bgColor=fff&bgWidth=10&bgHeight=10&bdLoc=top&bdColor=000&bdSize=2", nil)

	srv.ServeHTTP(rec, req)

	img, err := imaging.Decode(rec.Result().Body)
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}

	top := img.Bounds()
	top.Max.Y = 3
	if p, ok := imggen.Mismatch(img, top, color.Black); ok {
		t.Fatalf("rows 0-2 should be black; pixel %v is %v", p, img.At(p.X, p.Y))
	}

	rest := img.Bounds()
	rest.Min.Y = 3
	if p, ok := imggen.Mismatch(img, rest, color.White); ok {
		t.Fatalf("rows 3-9 should be white; pixel %v is %v", p, img.At(p.X, p.Y))
	}
}

func TestServer_generate_notFound(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	srv := bgserver.New(background.NewService(nil), bgserver.WithLogger(logger))

	tests := map[string]string{
		"unsupported format": "imgType=bmp&bgColor=fff&bgWidth=1&bgHeight=1",
		"missing format":     "bgColor=fff&bgWidth=1&bgHeight=1",
		"width too long":     "imgType=png&bgColor=fff&bgWidth=10000&bgHeight=1",
		"invalid color":      "imgType=png&bgColor=%23fff&bgWidth=1&bgHeight=1",
		"partial border":     "imgType=png&bgColor=fff&bgWidth=1&bgHeight=1&bdLoc=top",
		"invalid border":     "imgType=png&bgColor=fff&bgWidth=1&bgHeight=1&bdLoc=middle&bdColor=000&bdSize=1",
		"empty image":        "imgType=png&bgColor=fff&bgWidth=0&bgHeight=1",
		"empty gif":          "imgType=gif&bgColor=fff&bgWidth=1&bgHeight=00",
		"empty jpg":          "imgType=jpg&bgColor=fff&bgWidth=000&bgHeight=9",
	}

	for name, query := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/?"+query, nil)

			srv.ServeHTTP(rec, req)

			if rec.Result().StatusCode != http.StatusNotFound {
				t.Fatalf("Response should have status code %d; has %d", http.StatusNotFound, rec.Result().StatusCode)
			}

			body, _ := io.ReadAll(rec.Result().Body)
			if strings.TrimSpace(string(body)) != "404 page not found" {
				t.Fatalf("Response body should not reveal the error; is %q", body)
			}
		})
	}

	if !strings.Contains(logs.String(), "kind=invalid_border") {
		t.Fatalf("failed requests should be logged with their error kind; logs:\n%s", logs.String())
	}
}

func TestServer_unknownRoute(t *testing.T) {
	srv := bgserver.New(background.NewService(nil))

	for _, tt := range []struct{ method, path string }{
		{"GET", "/foo"},
		{"POST", "/"},
	} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		if rec.Result().StatusCode != http.StatusNotFound {
			t.Fatalf("%s %s should respond with status code %d; has %d", tt.method, tt.path, http.StatusNotFound, rec.Result().StatusCode)
		}
	}
}

func TestServer_formats(t *testing.T) {
	srv := bgserver.New(background.NewService(nil, background.WithLimits(background.Limits{WidthDigits: 3})))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/formats", nil))

	if rec.Result().StatusCode != http.StatusOK {
		t.Fatalf("Response should have status code %d; has %d", http.StatusOK, rec.Result().StatusCode)
	}

	var resp struct {
		Formats []string       `json:"formats"`
		Limits  map[string]int `json:"limits"`
	}

	if err := json.NewDecoder(rec.Result().Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if diff := cmp.Diff([]string{"gif", "jpg", "png"}, resp.Formats); diff != "" {
		t.Fatalf("wrong formats (-want +got):\n%s", diff)
	}

	want := map[string]int{"width": 3, "height": 5, "border": 2}
	if diff := cmp.Diff(want, resp.Limits); diff != "" {
		t.Fatalf("wrong limits (-want +got):\n%s", diff)
	}
}

func TestServer_disabledRoute(t *testing.T) {
	srv := bgserver.New(background.NewService(nil), bgserver.WithRoutes(routes.Disable(routes.Formats)))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/formats", nil))

	if rec.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("disabled route should respond with status code %d; has %d", http.StatusNotFound, rec.Result().StatusCode)
	}
}

func TestServer_routeMiddleware(t *testing.T) {
	var called int
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called++
			next.ServeHTTP(w, r)
		})
	}

	srv := bgserver.New(background.NewService(nil), bgserver.WithRoutes(routes.Middleware(routes.Generate, mw)))

	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/?imgType=png&bgColor=fff&bgWidth=1&bgHeight=1", nil))
	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/formats", nil))

	if called != 1 {
		t.Fatalf("middleware should be called once; was called %d times", called)
	}
}

func TestServer_emitter(t *testing.T) {
	ctx := context.Background()
	disk := background.MemoryDisk()
	svc := background.NewService(nil, background.WithEmitter(background.NewEmitter(disk, "/faux/")))
	srv := bgserver.New(svc)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/?imgType=gif&bgColor=ABC&bgWidth=4&bgHeight=2&bdLoc=right&bdColor=000&bdSize=1", nil))

	if rec.Result().StatusCode != http.StatusOK {
		t.Fatalf("Response should have status code %d; has %d", http.StatusOK, rec.Result().StatusCode)
	}

	b, err := disk.Get(ctx, "/faux/aabbcc4x2right0000001.gif")
	if err != nil {
		t.Fatalf("image should be saved to disk: %v", err)
	}

	if !bytes.Equal(b, rec.Body.Bytes()) {
		t.Fatalf("saved image should equal the response body")
	}
}
