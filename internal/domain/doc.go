// Package domain models heat stress: the Rothfusz heat index, the four-level
// risk scale derived from it, and the hand-authored threshold table that ships
// to microcontrollers as a C function.
//
// # Heat Index
//
// The reference value comes from the NWS Rothfusz multiple regression:
//
//	HI = -42.379 + 2.04901523*T + 10.14333127*RH - 0.22475541*T*RH
//	     - 0.00683783*T^2 - 0.05481717*RH^2 + 0.00122874*T^2*RH
//	     + 0.00085282*T*RH^2 - 0.00000199*T^2*RH^2
//
// with T in °F and RH in percent. Inputs and output are converted from and
// to °C. Below 26.7 °C (80 °F) the heat index is the air temperature itself.
// The regression is only published as valid for T >= 80 °F and RH >= 40 %;
// values outside that range are extrapolated, never clamped. See
// [RothfuszApplicable] for the diagnostic check.
//
// # Risk Scale
//
// Heat index (°C) maps onto four ordered categories:
//
//	<27 safe | <32 caution | <41 danger | >=41 extreme
//
// # Static Classifier
//
// [Classify] approximates the risk directly from temperature and humidity
// using [HeatRiskRules]. The table is written by hand and is not fitted to
// any generated dataset; the export package renders the same table as C so
// the device and this package always agree.
package domain
