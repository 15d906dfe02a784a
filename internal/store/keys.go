package store

// Collection names double as key suffixes.
const (
	nameCustomers = "customers"
	nameProducts  = "products"
	nameLogs      = "logs"
	nameSyncState = "sync_state"
)

// GuestIdentity is the scoping fallback when no authenticated identity is
// present. Guest data is never migrated from the legacy keys.
const GuestIdentity = "guest"

// Keyspace derives storage keys from the configured prefix. The layout
// predates multi-tenancy and is kept verbatim so existing datasets and the
// legacy-migration path keep working:
//
//	<prefix>_<email>_customers|products|logs|sync_state
//	<prefix>_migrated_<email>        one-time migration marker
//	<prefix>_customers|products|logs pre-multi-tenant legacy data
type Keyspace struct {
	prefix string
}

func NewKeyspace(prefix string) Keyspace { return Keyspace{prefix: prefix} }

func (k Keyspace) Scoped(identity, name string) string {
	return k.prefix + "_" + identity + "_" + name
}

func (k Keyspace) Legacy(name string) string {
	return k.prefix + "_" + name
}

func (k Keyspace) MigratedMarker(identity string) string {
	return k.prefix + "_migrated_" + identity
}

func (k Keyspace) Account(email string) string {
	return k.prefix + "_account_" + email
}
