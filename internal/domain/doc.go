// Package domain contains the entities of the task API (users, tasks,
// comments, auth tokens and password reset tokens) together with the value
// types shared by every layer: calendar dates, task filters, page requests
// and field-keyed validation errors.
//
// Types in this package carry no persistence or transport logic.
package domain
