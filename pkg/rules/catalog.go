package rules

import (
	"github.com/aretw0/chempath/pkg/domain"
)

var defaultSet = MustSet(
	// Alkane
	Define("halogenation_alkane").From(domain.Alkane).To(domain.AlkylBromide).
		Reactants("Br2").Over("UV", "").Byproducts("HBr").MustBuild(),
	Define("alkane_to_carboxylic").From(domain.Alkane).To(domain.CarboxylicAcid).When(AtMost(3)).
		Reactants("3[O]").Over("High Temperature", "Low Pressure").Byproducts("H2O").MustBuild(),

	// Alkene
	Define("hydrogenation_alkene").From(domain.Alkene).To(domain.Alkane).
		Reactants("H2").Over("Ni", "180 - 200°C").MustBuild(),
	Define("halogenation_alkene").From(domain.Alkene).To(domain.AlkylBromide).
		Reactants("HBr").Over("H2O2", "").MustBuild(),
	Define("hydration_alkene").From(domain.Alkene).To(domain.Alcohol).
		Reactants("H2O").Over("H3PO4", "300°C, 60atm").MustBuild(),
	Define("bromine_addition").From(domain.Alkene).To(domain.DibromoAlkane).
		Reactants("Br2").MustBuild(),

	// Alkyne
	Define("hydrogenation_alkyne").From(domain.Alkyne).To(domain.Alkene).
		Reactants("H2").Over("Ni", "180 - 200°C").MustBuild(),
	Define("hydration_alkyne").From(domain.Alkyne).To(domain.Aldehyde).When(AtMost(3)).
		Reactants("H2O").Over("80°C, 2% HgSO4", "20% H2SO4").MustBuild(),

	// Alcohol
	Define("dehydration").From(domain.Alcohol).To(domain.Alkene).When(AtLeast(2)).
		Over("H2SO4", "").Byproducts("H2O").MustBuild(),
	Define("oxidation_alcohol").From(domain.Alcohol).To(domain.Aldehyde).
		Reactants("[O]").Over("K2Cr2O7", "H2SO4").Byproducts("H2O").MustBuild(),

	// Aldehyde
	Define("oxidation_aldehyde").From(domain.Aldehyde).To(domain.CarboxylicAcid).
		Reactants("[O]").Over("K2Cr2O7", "H2SO4").MustBuild(),
	Define("reduce_aldehyde").From(domain.Aldehyde).To(domain.Alcohol).
		Reactants("2[H]").Over("LiAlH4", "").MustBuild(),

	// Carboxylic acid
	Define("reduce_carboxylic").From(domain.CarboxylicAcid).To(domain.Aldehyde).
		Reactants("2[H]").Over("LiAlH4", "").Byproducts("H2O").MustBuild(),
	Define("neutralization").From(domain.CarboxylicAcid).To(domain.CarboxylateSalt).
		Reactants("NaOH").Byproducts("H2O").MustBuild(),

	// Alkyl bromide
	Define("wurtz_coupling").From(domain.AlkylBromide).To(domain.Alkane).Carbons(Scale(2)).
		Coefficient(2).Reactants("2Na").Over("Dry Ether", "").Byproducts("2NaBr").MustBuild(),
	Define("dehydrohalogenation").From(domain.AlkylBromide).To(domain.Alkene).When(AtLeast(2)).
		Reactants("NaOH(alc)").Byproducts("H2O", "NaBr").MustBuild(),
	Define("halide_to_alcohol").From(domain.AlkylBromide).To(domain.Alcohol).
		Reactants("NaOH(aq)").Byproducts("NaBr").MustBuild(),

	// Carboxylate salt
	Define("soda_lime_decarboxylation").From(domain.CarboxylateSalt).To(domain.Alkane).When(MoreThan(1)).Carbons(Shift(-1)).
		Reactants("NaOH").Over("Δ", "CaO").Byproducts("Na2CO3").MustBuild(),

	// Dibromo alkane
	Define("dibromo_to_alkyne").From(domain.DibromoAlkane).To(domain.Alkyne).
		Over("NaNH2", "").Byproducts("2HBr").MustBuild(),
)

// Default returns the built-in catalog of 19 functional-group transformations.
func Default() Set {
	return defaultSet
}
