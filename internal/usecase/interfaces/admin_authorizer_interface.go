package interfaces

import "context"

// IAdminAuthorizer abstracts the external identity check guarding the admin
// surface. The service only ever needs an admin/non-admin verdict for the
// presented credential; how identities are managed is not its concern.
type IAdminAuthorizer interface {
	IsAdmin(ctx context.Context, credential string) (bool, error)
}
