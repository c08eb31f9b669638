// Package ajax models the client-side configuration of an AJAX call: the
// request attributes (URL, method, response data type) and the lifecycle
// hooks (before, precondition, success, complete) the client runtime executes
// around it.
//
// Attributes serialize to a compact executable object literal via
// CallAttributes.MarshalScript. Hook code comes in two flavours: snippets
// (Script), which the serializer wraps in a function shell with the hook's
// parameters, and complete functions (Function), which are emitted verbatim.
package ajax
