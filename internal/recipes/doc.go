// Package recipes is the typed client for the recipe backend.
//
// # Overview
//
// Every backend capability maps to one Client method and exactly one HTTP
// round trip. There are no retries; callers repeat the user action instead.
//
//	List      GET    /api/recipe/getAll
//	Search    GET    /api/recipe/find?title=&typeOfDish=&tags=&tags=
//	Get       GET    /api/recipe/{uuid}
//	Create    POST   /api/recipe/create
//	Update    PUT    /api/recipe/update/{uuid}
//	Cook      POST   /api/recipe/{uuid}/cook
//	Delete    DELETE /api/recipe/delete/{uuid}
//	AddPhoto  POST   /api/recipe/{uuid}/addPhoto   (multipart field "image")
//	FindTags  GET    /api/recipeTag/find?tagName=
//
// Fetch picks between List and Search: List only when title, dish type and
// tags are all empty.
//
// # Errors
//
// Failures come in two shapes:
//
//   - *StatusError: a response arrived with a non-2xx status. Error() is
//     "HTTP <code>".
//   - *TransportError: no response at all (refused, timeout, cancelled).
//
// Use StatusCode, IsNotFound and IsTransport rather than matching strings.
//
// # Wire format
//
// Image blobs arrive base64-encoded, either as one string or as an array of
// chunks. Chunks accepts both shapes; see the imagecodec package for turning
// them into displayable references.
package recipes
