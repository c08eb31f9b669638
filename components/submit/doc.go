// Package submit provides a form-submit button that answers its own AJAX
// call with the form's bound object serialized to JSON, and wires a generated
// client callback that renders the payload through a named client-side
// template into a target element.
//
// The component validates its template id and target selector at
// construction, pre-renders the success callback once, and is immutable
// afterwards. Its handler replaces any default response processing: the
// serialized JSON is the complete response body, served as
// application/json; charset=UTF-8.
package submit
