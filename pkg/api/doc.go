// Package api exposes the inventory service over HTTP: a JSON API for
// products, alerts and notifications, plus a Server-Sent Events stream that
// pushes every state change to connected clients.
//
// Responses share one envelope: data plus optional meta on success, a coded
// error object on failure. Domain errors map to statuses in respond.go;
// everything unexpected becomes an opaque 500. Handlers publish broadcast
// events after the store mutation commits, outside any store lock.
package api
