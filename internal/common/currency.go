package common

// CurrencyUSD is the only currency the treasury consolidates. Non-USD
// accounts are reported but never moved.
const CurrencyUSD = "USD"
