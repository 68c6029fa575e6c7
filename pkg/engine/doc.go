// Package engine computes box-model geometry for a container tree.
//
// The engine is the layout kernel shared by rendering backends: given a
// tree of box.Container nodes and a root seeded with the viewport size,
// Calc resolves every reachable node's calculated width, height, origin
// and wrap-line placement in place. It draws nothing and owns no toolkit
// dependency; backends paint the resulting geometry verbatim.
//
// A calculation is one synchronous, CPU-bound depth-first pass with no
// suspension points. Two sub-passes run per node: a size pass (top-down
// fixed sizing, main-axis remainder distribution, and an overflow/wrap
// convergence loop that reconciles contained content against available
// space, reserving scrollbar thickness or redistributing slack) and a
// place pass that turns wrap-line assignments into viewport-global
// coordinates. Table nodes run a dedicated two-phase column/row sizer
// instead and recurse back into the general engine for cell contents.
//
// Re-running Calc with an unchanged root seed and scrollbar setting is
// idempotent. Concurrent or re-entrant calls against the same tree are
// unsupported; clone the tree or serialize calls.
package engine
