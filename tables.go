// Code in this file mirrors the per-piece piece-square and direction
// tables of the Chess2 engine (a sunfish fork); values are reproduced
// verbatim from the reference implementation.
package chess2

// pst holds the piece-square table for each of the 21 piece letters,
// indexed by mailbox square. Off-board and empty squares are always 0.
var pst = map[Piece][120]int{
	'P': { // ClassicPawn
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 198, 198, 198, 198, 198, 198, 198, 198, 0,
		0, 178, 198, 198, 198, 198, 198, 198, 178, 0,
		0, 178, 198, 198, 198, 198, 198, 198, 178, 0,
		0, 178, 208, 208, 208, 208, 208, 208, 178, 0,
		0, 178, 238, 238, 238, 238, 238, 238, 178, 0,
		0, 178, 218, 218, 218, 218, 218, 218, 178, 0,
		0, 178, 198, 198, 198, 198, 198, 198, 178, 0,
		0, 198, 198, 198, 198, 198, 198, 198, 198, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'L': { // NemesisPawn
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 198, 198, 198, 198, 198, 198, 198, 198, 0,
		0, 178, 198, 198, 198, 198, 198, 198, 178, 0,
		0, 178, 198, 198, 198, 198, 198, 198, 178, 0,
		0, 178, 198, 208, 218, 218, 208, 198, 178, 0,
		0, 178, 198, 218, 238, 238, 218, 198, 178, 0,
		0, 178, 198, 208, 218, 218, 208, 198, 178, 0,
		0, 178, 198, 198, 198, 198, 198, 198, 178, 0,
		0, 198, 198, 198, 198, 198, 198, 198, 198, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'B': { // ClassicBishop
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 797, 824, 817, 808, 808, 817, 824, 797, 0,
		0, 814, 841, 834, 825, 825, 834, 841, 814, 0,
		0, 818, 845, 838, 829, 829, 838, 845, 818, 0,
		0, 824, 851, 844, 835, 835, 844, 851, 824, 0,
		0, 827, 854, 847, 838, 838, 847, 854, 827, 0,
		0, 826, 853, 846, 837, 837, 846, 853, 826, 0,
		0, 817, 844, 837, 828, 828, 837, 844, 817, 0,
		0, 792, 819, 812, 803, 803, 812, 819, 792, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'X': { // EmpoweredBishop
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 797, 824, 817, 808, 808, 817, 824, 797, 0,
		0, 814, 841, 834, 825, 825, 834, 841, 814, 0,
		0, 818, 845, 838, 829, 829, 838, 845, 818, 0,
		0, 824, 851, 844, 835, 835, 844, 851, 824, 0,
		0, 827, 854, 847, 838, 838, 847, 854, 827, 0,
		0, 826, 853, 846, 837, 837, 846, 853, 826, 0,
		0, 817, 844, 837, 828, 828, 837, 844, 817, 0,
		0, 792, 819, 812, 803, 803, 812, 819, 792, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'T': { // AnimalsTiger
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 797, 824, 817, 808, 808, 817, 824, 797, 0,
		0, 814, 841, 834, 825, 825, 834, 841, 814, 0,
		0, 818, 845, 838, 829, 829, 838, 845, 818, 0,
		0, 824, 851, 844, 835, 835, 844, 851, 824, 0,
		0, 827, 854, 847, 838, 838, 847, 854, 827, 0,
		0, 826, 853, 846, 837, 837, 846, 853, 826, 0,
		0, 817, 844, 837, 828, 828, 837, 844, 817, 0,
		0, 792, 819, 812, 803, 803, 812, 819, 792, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'N': { // ClassicKnight
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 627, 762, 786, 798, 798, 786, 762, 627, 0,
		0, 763, 798, 822, 834, 834, 822, 798, 763, 0,
		0, 817, 852, 876, 888, 888, 876, 852, 817, 0,
		0, 797, 832, 856, 868, 868, 856, 832, 797, 0,
		0, 799, 834, 858, 870, 870, 858, 834, 799, 0,
		0, 758, 793, 817, 829, 829, 817, 793, 758, 0,
		0, 739, 774, 798, 810, 810, 798, 774, 739, 0,
		0, 683, 718, 742, 754, 754, 742, 718, 683, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'Y': { // EmpoweredKnight
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 627, 762, 786, 798, 798, 786, 762, 627, 0,
		0, 763, 798, 822, 834, 834, 822, 798, 763, 0,
		0, 817, 852, 876, 888, 888, 876, 852, 817, 0,
		0, 797, 832, 856, 868, 868, 856, 832, 797, 0,
		0, 799, 834, 858, 870, 870, 858, 834, 799, 0,
		0, 758, 793, 817, 829, 829, 817, 793, 758, 0,
		0, 739, 774, 798, 810, 810, 798, 774, 739, 0,
		0, 683, 718, 742, 754, 754, 742, 718, 683, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'H': { // AnimalsWildHorse
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 627, 762, 786, 798, 798, 786, 762, 627, 0,
		0, 763, 798, 822, 834, 834, 822, 798, 763, 0,
		0, 817, 852, 876, 888, 888, 876, 852, 817, 0,
		0, 797, 832, 856, 868, 868, 856, 832, 797, 0,
		0, 799, 834, 858, 870, 870, 858, 834, 799, 0,
		0, 758, 793, 817, 829, 829, 817, 793, 758, 0,
		0, 739, 774, 798, 810, 810, 798, 774, 739, 0,
		0, 683, 718, 742, 754, 754, 742, 718, 683, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'R': { // ClassicRook
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'Z': { // EmpoweredRook
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'G': { // ReaperGhost
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 1258, 1263, 1263, 1263, 1263, 1263, 1263, 1258, 0,
		0, 1258, 1263, 1263, 1263, 1263, 1263, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1234, 1234, 1234, 1234, 1234, 1234, 1234, 1234, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'E': { // AnimalsElephant
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'Q': { // ClassicQueen
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'M': { // NemesisQueen
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 2200, 2600, 2600, 2600, 2600, 2600, 2600, 2200, 0,
		0, 2200, 2500, 2500, 2500, 2500, 2500, 2500, 2200, 0,
		0, 2200, 2500, 2500, 2500, 2500, 2500, 2500, 2200, 0,
		0, 2200, 2500, 2500, 2500, 2500, 2500, 2500, 2200, 0,
		0, 2200, 2500, 2500, 2500, 2500, 2500, 2500, 2200, 0,
		0, 2200, 2500, 2500, 2500, 2500, 2500, 2500, 2200, 0,
		0, 2200, 2500, 2500, 2500, 2500, 2500, 2500, 2200, 0,
		0, 1900, 1900, 1900, 1900, 1900, 1900, 1900, 1900, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'O': { // EmpoweredQueen
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'A': { // ReaperReaper
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1258, 1263, 1268, 1272, 1272, 1268, 1263, 1258, 0,
		0, 1234, 1234, 1234, 1234, 1234, 1234, 1234, 1234, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'U': { // TwoKingsWarriorQueen
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 0,
		0, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 0,
		0, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 0,
		0, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 0,
		0, 60200, 60325, 60400, 60400, 60400, 60400, 60325, 60200, 0,
		0, 60150, 60250, 60300, 60300, 60300, 60300, 60250, 60150, 0,
		0, 60150, 60175, 60200, 60200, 60200, 60200, 60175, 60150, 0,
		0, 60100, 60100, 60100, 60100, 60100, 60100, 60100, 60100, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'J': { // AnimalsJungleQueen
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 2529, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'K': { // ClassicKing
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 60098, 60132, 60073, 60025, 60025, 60073, 60132, 60098, 0,
		0, 60119, 60153, 60094, 60046, 60046, 60094, 60153, 60119, 0,
		0, 60146, 60180, 60121, 60073, 60073, 60121, 60180, 60146, 0,
		0, 61000, 61000, 61000, 61000, 61000, 61000, 61000, 61000, 0,
		0, 60196, 60230, 60171, 60123, 60123, 60171, 60230, 60196, 0,
		0, 60224, 60258, 60199, 60151, 60151, 60199, 60258, 60224, 0,
		0, 60287, 60321, 60262, 60214, 60214, 60262, 60321, 60287, 0,
		0, 60298, 60332, 60273, 60225, 60225, 60273, 60332, 60298, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'W': { // TwoKingsWarriorKing
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 0,
		0, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 0,
		0, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 0,
		0, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 62000, 0,
		0, 60200, 60325, 60400, 60400, 60400, 60400, 60325, 60200, 0,
		0, 60150, 60250, 60300, 60300, 60300, 60300, 60250, 60150, 0,
		0, 60150, 60175, 60200, 60200, 60200, 60200, 60175, 60150, 0,
		0, 60100, 60100, 60100, 60100, 60100, 60100, 60100, 60100, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	'C': { // GenericKing
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 60098, 60132, 60073, 60025, 60025, 60073, 60132, 60098, 0,
		0, 60119, 60153, 60094, 60046, 60046, 60094, 60153, 60119, 0,
		0, 60146, 60180, 60121, 60073, 60073, 60121, 60180, 60146, 0,
		0, 61000, 61000, 61000, 61000, 61000, 61000, 61000, 61000, 0,
		0, 60196, 60230, 60171, 60123, 60123, 60171, 60230, 60196, 0,
		0, 60224, 60258, 60199, 60151, 60151, 60199, 60258, 60224, 0,
		0, 60287, 60321, 60262, 60214, 60214, 60262, 60321, 60287, 0,
		0, 60298, 60332, 60273, 60225, 60225, 60273, 60332, 60298, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
}

// dirs holds the per-piece move directions. For most pieces these are
// index deltas applied along a ray from the origin square. For Reaper
// ('A') and Reaper Ghost ('G') the entries are absolute destination
// squares instead of deltas (see genReaperFamily).
var dirs = map[Piece][]int{
	'P': {-10, -20, -11, -9}, // ClassicPawn
	'L': {-10, 1, 10, -1, -9, 11, 9, -11}, // NemesisPawn
	'B': {-9, 11, 9, -11}, // ClassicBishop
	'X': {-10, 1, 10, -1, -9, 11, 9, -11, -19, -8, 12, 21, 19, 8, -12, -21}, // EmpoweredBishop
	'T': {-9, 11, 9, -11, -18, 22, 18, -22}, // AnimalsTiger
	'N': {-19, -8, 12, 21, 19, 8, -12, -21}, // ClassicKnight
	'Y': {-10, 1, 10, -1, -9, 11, 9, -11, -19, -8, 12, 21, 19, 8, -12, -21}, // EmpoweredKnight
	'H': {-19, -8, 12, 21, 19, 8, -12, -21}, // AnimalsWildHorse
	'R': {-10, 1, 10, -1}, // ClassicRook
	'Z': {-10, 1, 10, -1, -9, 11, 9, -11, -19, -8, 12, 21, 19, 8, -12, -21}, // EmpoweredRook
	'G': {21, 22, 23, 24, 25, 26, 27, 28, 31, 32, 33, 34, 35, 36, 37, 38, 41, 42, 43, 44, 45, 46, 47, 48, 51, 52, 53, 54, 55, 56, 57, 58, 61, 62, 63, 64, 65, 66, 67, 68, 71, 72, 73, 74, 75, 76, 77, 78, 81, 82, 83, 84, 85, 86, 87, 88}, // ReaperGhost
	'E': {-10, 1, 10, -1}, // AnimalsElephant
	'Q': {-10, 1, 10, -1, -9, 11, 9, -11}, // ClassicQueen
	'M': {-10, 1, 10, -1, -9, 11, 9, -11}, // NemesisQueen
	'O': {-10, 1, 10, -1, -9, 11, 9, -11}, // EmpoweredQueen
	'A': {31, 32, 33, 34, 35, 36, 37, 38, 41, 42, 43, 44, 45, 46, 47, 48, 51, 52, 53, 54, 55, 56, 57, 58, 61, 62, 63, 64, 65, 66, 67, 68, 71, 72, 73, 74, 75, 76, 77, 78, 81, 82, 83, 84, 85, 86, 87, 88}, // ReaperReaper
	'U': {-10, 1, 10, -1, 0, -9, 11, 9, -11}, // TwoKingsWarriorQueen
	'J': {-10, 1, 10, -1, -19, -8, 12, 21, 19, 8, -12, -21}, // AnimalsJungleQueen
	'K': {-10, 1, 10, -1, -9, 11, 9, -11}, // ClassicKing
	'W': {-10, 1, 10, -1, 0, -9, 11, 9, -11}, // TwoKingsWarriorKing
	'C': {-10, 1, 10, -1, -9, 11, 9, -11}, // GenericKing
}