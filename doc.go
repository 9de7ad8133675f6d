// Package taskmanager is a small task tracking backend: bearer token
// authentication, identity resolution, and task CRUD behind an
// owner-or-admin policy.
//
// Authentication:
//   - TokenService issues and validates signed JWTs. Validation collapses
//     every failure mode into the same error so callers cannot probe which
//     check rejected a token.
//   - UserProvider resolves token subjects against the user store on every
//     request; deleting an account invalidates its outstanding tokens.
//   - The middleware/authware package is the request level gate that ties
//     the two together for fiber routes.
//
// Authorization:
//   - TaskPolicy decides task access: the creator or any admin may update a
//     task, only admins may delete. Authentication failures (401) and policy
//     denials (403) are deliberately distinct.
//
// Persistence:
//   - Users and Tasks are Bun repositories over the shared RepositoryManager,
//     which also carries transactions for multi step flows such as
//     registration.
package taskmanager
