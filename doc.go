// Package raymarch renders parametrized 3D fractals in real time by
// marching rays through signed distance fields on the GPU.
//
// # Overview
//
// A single window shows one of three fractal families (kaleidoscopic IFS
// primitives, quaternion Julia sets and generalized quaternion Julia sets)
// behind a collapsible settings panel. Dragging with the primary button
// orbits the camera around the origin, the scroll wheel moves it closer or
// further away, and Escape quits.
//
// # Architecture
//
// The module is organized into:
//   - scene: logical data model (screen, camera, render options, panel state)
//   - internal/packed: byte-exact GPU layouts of the data model
//   - internal/uniform, internal/group: uniform buffers and bind groups
//   - internal/shader: embedded WGSL programs, one per fractal family
//   - render: the render-state machine and per-frame sequence
//   - gui: the settings panel, rasterized with gg
//   - app: event routing between the window and the render state
//   - internal/platform: glfw window and hal surface bootstrap
//
// # Configuration
//
// [Options] collects start-up configuration. Values come from
// [DefaultOptions], functional [Option]s and, in cmd/raymarch, an optional
// TOML file read by [LoadOptions].
//
// # Logging
//
// The module is silent by default. Call [SetLogger] to route lifecycle and
// diagnostic messages to a [log/slog] handler.
package raymarch

// Version is the current version of the module.
const Version = "0.1.0"
