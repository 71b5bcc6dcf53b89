// Package section provides casts to run trajectories through: synthetic
// hydrographic sections with a thermocline-shaped vertical structure and
// an along-section climate gradient, and a CSV loader for externally
// prepared sections. Real dataset ingestion (netCDF model output,
// observational archives) is a caller concern.
package section
