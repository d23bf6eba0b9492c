//go:build !nogpu

package gpu

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/glyph"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// mockProvider implements gpucontext.DeviceProvider plus the HAL accessors.
type mockProvider struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return nil }
func (m *mockProvider) Queue() gpucontext.Queue               { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }
func (m *mockProvider) HalDevice() any                        { return m.device }
func (m *mockProvider) HalQueue() any                         { return m.queue }

var _ gpucontext.DeviceProvider = (*mockProvider)(nil)

// plainProvider implements only gpucontext.DeviceProvider.
type plainProvider struct{}

func (plainProvider) Device() gpucontext.Device   { return nil }
func (plainProvider) Queue() gpucontext.Queue     { return nil }
func (plainProvider) Adapter() gpucontext.Adapter { return nil }
func (plainProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}
func (plainProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ gpucontext.DeviceProvider = plainProvider{}

func noopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

func TestNewPipelineFromProvider(t *testing.T) {
	device, queue := noopDevice(t)
	provider := &mockProvider{device: device, queue: queue, format: gputypes.TextureFormatRGBA8Unorm}

	p, err := NewPipelineFromProvider(provider, Config{})
	if err != nil {
		t.Fatalf("NewPipelineFromProvider failed: %v", err)
	}
	defer p.Destroy()

	if got := p.Config().Format; got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want provider surface format RGBA8Unorm", got)
	}

	explicit, err := NewPipelineFromProvider(provider, Config{Format: gputypes.TextureFormatBGRA8Unorm})
	if err != nil {
		t.Fatalf("NewPipelineFromProvider failed: %v", err)
	}
	defer explicit.Destroy()
	if got := explicit.Config().Format; got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format = %v, want explicit BGRA8Unorm", got)
	}
}

func TestNewPipelineFromProviderErrors(t *testing.T) {
	device, queue := noopDevice(t)

	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		wantErr  error
		want     string
	}{
		{"nil", nil, ErrNilProvider, "nil device provider"},
		{"no hal", plainProvider{}, ErrProviderNotHAL, "missing HalDevice/HalQueue"},
		{"nil device", &mockProvider{queue: queue}, ErrProviderNotHAL, "HalDevice is not hal.Device"},
		{"nil queue", &mockProvider{device: device}, ErrProviderNotHAL, "HalQueue is not hal.Queue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPipelineFromProvider(tt.provider, Config{})
			if err == nil {
				p.Destroy()
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestPipelineDrawLifecycle(t *testing.T) {
	device, queue := noopDevice(t)
	p := NewPipeline(device, queue, DefaultConfig())
	defer p.Destroy()

	quads := []glyph.Quad{{X0: 0, Y0: 0, X1: 8, Y1: 12, U1: 1, V1: 1}}
	vp := glyph.Viewport{Width: 640, Height: 480}
	d, err := p.PrepareDraw(vp.DrawTransform(glyph.Identity()), glyph.DefaultTint(), quads)
	if err != nil {
		t.Fatalf("PrepareDraw failed: %v", err)
	}
	if d.IndexCount() != 6 {
		t.Errorf("IndexCount = %d, want 6", d.IndexCount())
	}
	p.ReleaseDraw(d)

	if _, err := p.PrepareDraw(glyph.Identity(), glyph.DefaultTint(), nil); !errors.Is(err, ErrNoQuads) {
		t.Errorf("got %v, want ErrNoQuads", err)
	}
}

func TestLoggerPropagation(t *testing.T) {
	var buf bytes.Buffer
	glyph.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer glyph.SetLogger(nil)

	device, queue := noopDevice(t)
	p := NewPipeline(device, queue, DefaultConfig())
	defer p.Destroy()

	if _, err := p.AtlasLayout(); err != nil {
		t.Fatalf("AtlasLayout failed: %v", err)
	}
	if !strings.Contains(buf.String(), "glyph pipeline created") {
		t.Errorf("expected pipeline creation to be logged, got %q", buf.String())
	}
}

func TestShaderSource(t *testing.T) {
	if !strings.Contains(ShaderSource(), "vs_main") {
		t.Error("shader source missing vs_main")
	}
}
