package cli

const shortDescription = "Generate a ULID for now or for a given time"

const longDescription = `Generate a Universally Unique Lexicographically Sortable Identifier.

Without --time the current system time is used. TIME must be one of:

  Unix timestamp (digits only)
    up to 10 digits        seconds since the Unix epoch
    11 to 13 digits        milliseconds since the Unix epoch

  RFC 3339
    YYYY-MM-DDTHH:MM:SS[.fraction](Z|+HH:MM|-HH:MM)
    the zone designator is required; fractions are truncated to milliseconds

  Date only
    YYYY-MM-DD             interpreted as midnight UTC`

const examples = `  # ULID for right now
  ulidgen

  # ULID for a Unix timestamp
  ulidgen -t 1767270896
  ulidgen -t 1767270896000

  # ULID for an RFC 3339 time
  ulidgen -t 2026-01-01T12:34:56Z
  ulidgen -t 2026-01-01T12:34:56.789-03:00

  # ULID for a date
  ulidgen -t 2026-01-01

  # Decode the time of an existing ULID
  ulidgen inspect 01KDWRVN4N000G40R40M30E209`
