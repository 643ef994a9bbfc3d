// Package domain contains the core entities of the outreach service:
// campaigns, their contacts and the inbox threads materialized from them.
// The types carry no infrastructure concerns so every layer can share them.
package domain
