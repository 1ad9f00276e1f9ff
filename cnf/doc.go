// Package cnf rewrites context-free grammars into Chomsky normal form.
//
// The conversion runs three stages, each producing a new grammar that
// generates the same strings as its input:
//
//	SplitHybrid     A -> 'b' C      becomes  A -> T_B C, T_B -> 'b'
//	EliminateUnits  A -> B, B -> 'b' becomes A -> 'b'
//	Binarize        A -> B C D      becomes  A -> B_C D, B_C -> B C
//
// Input grammars must not contain empty productions or cycles of unit
// productions. Cycles are reported as *CyclicUnitProductionError.
package cnf
