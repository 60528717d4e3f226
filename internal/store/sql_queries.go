package store

// Tables and their column lists. Statements themselves are assembled with
// squirrel so the same code serves both PostgreSQL ($n) and SQLite (?)
// placeholders.
const (
	tableKeys             = "keys"
	tableKeyMaterial      = "key_material"
	tableSealedSecrets    = "sealed_secrets"
	tableProofRevocations = "proof_revocations"
)

var (
	keyColumns = []string{
		"id",
		"algorithm",
		"policy",
		"public_key",
		"fingerprint",
		"created_at",
		"updated_at",
	}

	keyMaterialColumns = []string{
		"key_id",
		"algorithm",
		"salt",
		"material",
		"public_key",
	}

	sealedSecretColumns = []string{
		"id",
		"key_id",
		"algorithm",
		"nonce",
		"ciphertext",
		"associated_data",
		"created_at",
	}
)
