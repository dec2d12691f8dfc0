// Package rendergraph compiles declarative render graphs into executable
// pass lists with precomputed resource-state transition barriers.
//
// # Overview
//
// Explicit graphics APIs require the application to transition resources
// between execution states (render target, shader resource, copy source,
// and so on) with barrier commands, and to batch those barriers to avoid
// redundant sync points. rendergraph moves that bookkeeping to graph build
// time: the caller declares an ordered list of passes, each naming the
// resources it touches and the state it needs them in, and Compile derives
// every barrier the whole frame needs. Execution then replays the passes
// against a native command recorder with zero state tracking.
//
// # Quick Start
//
//	g := rendergraph.NewGraph()
//
//	color := g.AddResource("color", rendergraph.ResourceDesc{
//		Format:       gputypes.TextureFormatRGBA8Unorm,
//		InitialState: rendergraph.StateCommon,
//		FinalState:   rendergraph.StatePresent,
//	})
//
//	g.AddPass("draw", rendergraph.PassFunc(func(pc *rendergraph.PassContext) error {
//		// record draw commands via pc.Recorder()
//		return nil
//	})).Use(color, rendergraph.StateRenderTarget)
//
//	rt, err := g.Compile(provider)
//	if err != nil {
//		return err
//	}
//	rt.Execute(frameIndex, rec)
//
// # Architecture
//
// Declaration flows through three stages:
//
//	+-----------+     +-----------+     +---------------------+
//	|   Graph   | --> |  Compile  | --> |       Runtime       |
//	| (declare) |     | (derive   |     | PassRuntime list +  |
//	|           |     |  barriers)|     | physical resolution |
//	+-----------+     +-----------+     +---------------------+
//
// Each compiled pass carries (beg, mid, end) transition records per
// declared resource: beg is the state entering the pass, mid the state the
// body requires, end the state the pass leaves the resource in. Entry
// barriers are emitted where beg != mid, exit barriers where mid != end,
// each as a single batched recorder call.
//
// # Capability Restriction
//
// Pass bodies receive a [PassContext] scoped to the usages that pass
// declared. Touching anything else fails with [ErrUndeclaredUsage]. This is
// what lets the compiler derive barriers without any execution-time
// cross-checking.
//
// # Concurrency
//
// A compiled [Runtime] is immutable and may execute concurrently for
// multiple frames in flight, provided each call uses its own command
// recorder. Recording within one recorder is strictly sequential.
//
// # Sub-packages
//
//   - frames: per-frame physical resource resolution (N-buffered rings of
//     gpucontext textures)
//   - recorder: command recorder registry plus trace/null recorders
package rendergraph
