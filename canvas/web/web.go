// Package web presents a frame in the browser: it serves a page holding an
// HTML canvas and pushes the encoded frame over a websocket to the first
// viewer, then shuts the server down.
package web

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	mandel "github.com/marben/parallel_mandel"
	"github.com/marben/parallel_mandel/canvas"
)

// Canvas implements mandel.Surface.
type Canvas struct {
	Addr   string // listen address, e.g. ":8080"
	Title  string
	Format canvas.Format
	Scale  int // integer zoom applied before encoding
}

var _ mandel.Surface = (*Canvas)(nil)

// Present listens on c.Addr and serves buf until one viewer received it or
// ctx is done.
func (c *Canvas) Present(ctx context.Context, buf *mandel.PixelBuffer) error {
	l, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}
	return c.Serve(ctx, l, buf)
}

// Serve is Present on an existing listener. The listener is closed on return.
func (c *Canvas) Serve(ctx context.Context, l net.Listener, buf *mandel.PixelBuffer) error {
	log := mandel.Logger()

	img := canvas.Upscale(buf.RGBA(), c.Scale)
	var frame bytes.Buffer
	if err := canvas.Encode(&frame, img, c.Format); err != nil {
		l.Close()
		return fmt.Errorf("encode frame: %w", err)
	}

	shown := make(chan struct{})
	var once sync.Once
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", indexHandler(page{
		Title:  c.title(),
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		MIME:   c.Format.MIME(),
	}))
	mux.HandleFunc("GET /ws", frameHandler(frame.Bytes(), func() {
		once.Do(func() { close(shown) })
	}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()
	log.Info("waiting for a viewer", "url", "http://"+l.Addr().String())

	var err error
	select {
	case <-shown:
		log.Info("frame delivered")
	case <-ctx.Done():
		err = context.Cause(ctx)
	case err = <-errCh:
		return fmt.Errorf("http serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil && err == nil {
		err = fmt.Errorf("http shutdown: %w", serr)
	}
	return err
}

func (c *Canvas) title() string {
	if c.Title == "" {
		return "mandelbrot"
	}
	return c.Title
}

// frameHandler upgrades the request to a websocket, sends the frame as one
// binary message and closes the connection.
func frameHandler(frame []byte, delivered func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := mandel.Logger()
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Warn("websocket accept", "remote", r.RemoteAddr, "err", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()
		if err := conn.Write(ctx, websocket.MessageBinary, frame); err != nil {
			log.Warn("send frame", "remote", r.RemoteAddr, "err", err)
			return
		}
		delivered()
		if err := conn.Close(websocket.StatusNormalClosure, "frame delivered"); err != nil {
			log.Debug("websocket close", "remote", r.RemoteAddr, "err", err)
		}
	}
}

type page struct {
	Title         string
	Width, Height int
	MIME          string
}

func indexHandler(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		if err := indexTmpl.Execute(w, p); err != nil {
			mandel.Logger().Warn("render index", "err", err)
		}
	}
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>body { margin: 0; background: #000; }</style>
</head>
<body>
<canvas id="canvas" width="{{.Width}}" height="{{.Height}}"></canvas>
<script>
const proto = location.protocol === "https:" ? "wss://" : "ws://";
const ws = new WebSocket(proto + location.host + "/ws");
ws.binaryType = "arraybuffer";
ws.onmessage = async (ev) => {
	const frame = await createImageBitmap(new Blob([ev.data], {type: "{{.MIME}}"}));
	document.getElementById("canvas").getContext("2d").drawImage(frame, 0, 0);
};
</script>
</body>
</html>
`))

