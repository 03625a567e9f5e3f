// Package scene holds the logical data model of the visualizer: the screen
// size, the orbiting camera, the render options consumed by the ray
// marcher, and the user-editable settings behind the panel.
//
// All types are plain values. The render state owns one copy of each and is
// the only writer; the GPU layout of each type lives in internal/packed.
package scene
