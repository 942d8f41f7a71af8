package repositories

// query to expected_payout database
var (
	queryPayoutCreate = `
			INSERT INTO expected_payout(
				"traderRef", "platform", "baseAmount", "expectedAmount", "status", "createdAt"
			)
			VALUES(
				$1, $2, $3, $4, $5, now()
			)
			RETURNING "id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "createdAt";
		`

	queryPayoutGetByID = `SELECT
		"id", "traderRef", "platform", "baseAmount", "expectedAmount",
		"status", "observedAmount", COALESCE("receivedBank", ''), "createdAt", "receivedAt"
		FROM "expected_payout"
		WHERE "id" = $1;`

	queryPayoutMarkReceived = `
			UPDATE expected_payout
			SET "observedAmount" = $1, "receivedBank" = $2, "status" = $3, "receivedAt" = now()
			WHERE "id" = $4 AND "status" = $5
			RETURNING "id", "traderRef", "platform", "baseAmount", "expectedAmount",
				"status", "observedAmount", COALESCE("receivedBank", ''), "createdAt", "receivedAt";
		`
)
