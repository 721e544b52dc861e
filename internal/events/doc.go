// Package events provides a synchronous in-process event emitter.
//
// Services publish events without knowing which handlers will process them.
// The password reset flow uses it to hand a freshly generated token to the
// mail notifier, keeping the service free of any delivery mechanism.
//
// The primary components are:
// - Event: a typed notification with a JSON payload
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
