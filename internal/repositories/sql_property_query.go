package repositories

// query to property database
var (
	queryPropertyGet = `SELECT "value" FROM "property" WHERE "key" = $1;`

	queryPropertyUpsert = `
			INSERT INTO property("key", "value", "updatedAt")
			VALUES($1, $2, now())
			ON CONFLICT ("key")
			DO UPDATE SET "value" = EXCLUDED."value", "updatedAt" = now();
		`

	queryPropertyDelete = `DELETE FROM "property" WHERE "key" = $1;`
)
