package models

// RunLeaseKey is the redis key guarding against overlapping runs.
const RunLeaseKey = "treasury:run:lease"

// AccountCacheKeyPrefix keys the per-bank account list in the read-through
// cache; the bank name is appended.
const AccountCacheKeyPrefix = "treasury:accounts:"
