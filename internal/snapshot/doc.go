// Package snapshot decodes market-data XML snapshots.
//
// A core snapshot (FI.xml) has a <Mkt> root holding point measurements
// (<Pnt>), matrix blocks (<Mtrx>) and curve blocks (<Curve>). Every block
// carries an <Undly PxStrctTyp="..."/> type tag and one or more
// <Msr Row=".." Col=".." Val=".."/> measurements. The equity metadata file
// (marketdata_equity_fd.xml) has a <marketdata_equity> root whose
// estimation_ccy_curve attribute names the estimation currency curve.
package snapshot
