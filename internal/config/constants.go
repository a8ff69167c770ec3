package config

// DefaultDatabasePath is used when DATABASE_PATH is not set.
const DefaultDatabasePath = "./tasklist.db"
