/*
Package grid implements the square cell grid a search runs on.

A Grid owns rows×rows cells, fixed at construction, and exposes the edit API
used between searches: obstacle placement and removal, start/finish roles,
resets and random obstacle scattering. Adjacency is cached per cell and must be
refreshed explicitly after edits; the grid tracks whether that cache is stale.

Roles are protected: obstacle edits on the start or finish cell are silent
no-ops, and at most one cell holds each role.
*/
package grid
