package category

// Attribute names as used by the training data columns.
const (
	AttrZoning        = "MSZoning"
	AttrLotConfig     = "LotConfig"
	AttrNeighborhood  = "Neighborhood"
	AttrHouseStyle    = "HouseStyle"
	AttrKitchenQual   = "KitchenQual"
	AttrHeatingQC     = "HeatingQC"
	AttrFunctional    = "Functional"
	AttrBsmtExposure  = "BsmtExposure"
	AttrExterior1st   = "Exterior1st"
	AttrFoundation    = "Foundation"
	AttrFireplaceQu   = "FireplaceQu"
	AttrGarageType    = "GarageType"
	AttrGarageFinish  = "GarageFinish"
	AttrSaleCondition = "SaleCondition"
)

type Zoning uint8

const (
	ZoningOther Zoning = 0
	ZoningRM    Zoning = 1
	ZoningRH    Zoning = 2
	ZoningRL    Zoning = 3
	ZoningFV    Zoning = 4
)

var ZoningTable = newTable(AttrZoning,
	Entry[Zoning]{"other", ZoningOther},
	Entry[Zoning]{"RM", ZoningRM},
	Entry[Zoning]{"RH", ZoningRH},
	Entry[Zoning]{"RL", ZoningRL},
	Entry[Zoning]{"FV", ZoningFV},
)

func (v Zoning) Code() int      { return int(v) }
func (v Zoning) String() string { return ZoningTable.Label(v) }

type LotConfig uint8

const (
	LotConfigInside  LotConfig = 0
	LotConfigCorner  LotConfig = 1
	LotConfigFR2     LotConfig = 2
	LotConfigOther   LotConfig = 3
	LotConfigCulDSac LotConfig = 4
)

// LotConfigTable lists CulDSac before other; display order differs from code order.
var LotConfigTable = newTable(AttrLotConfig,
	Entry[LotConfig]{"Inside", LotConfigInside},
	Entry[LotConfig]{"Corner", LotConfigCorner},
	Entry[LotConfig]{"FR2", LotConfigFR2},
	Entry[LotConfig]{"CulDSac", LotConfigCulDSac},
	Entry[LotConfig]{"other", LotConfigOther},
)

func (v LotConfig) Code() int      { return int(v) }
func (v LotConfig) String() string { return LotConfigTable.Label(v) }

type Neighborhood uint8

const (
	NeighborhoodIDOTRR Neighborhood = iota
	NeighborhoodMeadowV
	NeighborhoodBrDale
	NeighborhoodBrkSide
	NeighborhoodOldTown
	NeighborhoodEdwards
	NeighborhoodSawyer
	NeighborhoodSWISU
	NeighborhoodNAmes
	NeighborhoodMitchel
	NeighborhoodSawyerW
	NeighborhoodOther
	NeighborhoodNWAmes
	NeighborhoodGilbert
	NeighborhoodCollgCr
	NeighborhoodBlmngtn
	NeighborhoodCrawfor
	NeighborhoodClearCr
	NeighborhoodSomerst
	NeighborhoodTimber
	NeighborhoodStoneBr
	NeighborhoodNridgHt
	NeighborhoodNoRidge
)

var NeighborhoodTable = newTable(AttrNeighborhood,
	Entry[Neighborhood]{"IDOTRR", NeighborhoodIDOTRR},
	Entry[Neighborhood]{"MeadowV", NeighborhoodMeadowV},
	Entry[Neighborhood]{"BrDale", NeighborhoodBrDale},
	Entry[Neighborhood]{"BrkSide", NeighborhoodBrkSide},
	Entry[Neighborhood]{"OldTown", NeighborhoodOldTown},
	Entry[Neighborhood]{"Edwards", NeighborhoodEdwards},
	Entry[Neighborhood]{"Sawyer", NeighborhoodSawyer},
	Entry[Neighborhood]{"SWISU", NeighborhoodSWISU},
	Entry[Neighborhood]{"NAmes", NeighborhoodNAmes},
	Entry[Neighborhood]{"Mitchel", NeighborhoodMitchel},
	Entry[Neighborhood]{"SawyerW", NeighborhoodSawyerW},
	Entry[Neighborhood]{"other", NeighborhoodOther},
	Entry[Neighborhood]{"NWAmes", NeighborhoodNWAmes},
	Entry[Neighborhood]{"Gilbert", NeighborhoodGilbert},
	Entry[Neighborhood]{"CollgCr", NeighborhoodCollgCr},
	Entry[Neighborhood]{"Blmngtn", NeighborhoodBlmngtn},
	Entry[Neighborhood]{"Crawfor", NeighborhoodCrawfor},
	Entry[Neighborhood]{"ClearCr", NeighborhoodClearCr},
	Entry[Neighborhood]{"Somerst", NeighborhoodSomerst},
	Entry[Neighborhood]{"Timber", NeighborhoodTimber},
	Entry[Neighborhood]{"StoneBr", NeighborhoodStoneBr},
	Entry[Neighborhood]{"NridgHt", NeighborhoodNridgHt},
	Entry[Neighborhood]{"NoRidge", NeighborhoodNoRidge},
)

func (v Neighborhood) Code() int      { return int(v) }
func (v Neighborhood) String() string { return NeighborhoodTable.Label(v) }

type HouseStyle uint8

const (
	HouseStyleSFoyer HouseStyle = 0
	HouseStyle15Fin  HouseStyle = 1
	HouseStyleOther  HouseStyle = 2
	HouseStyle1Story HouseStyle = 3
	HouseStyleSLvl   HouseStyle = 4
	HouseStyle2Story HouseStyle = 5
)

var HouseStyleTable = newTable(AttrHouseStyle,
	Entry[HouseStyle]{"SFoyer", HouseStyleSFoyer},
	Entry[HouseStyle]{"1.5Fin", HouseStyle15Fin},
	Entry[HouseStyle]{"other", HouseStyleOther},
	Entry[HouseStyle]{"1Story", HouseStyle1Story},
	Entry[HouseStyle]{"SLvl", HouseStyleSLvl},
	Entry[HouseStyle]{"2Story", HouseStyle2Story},
)

func (v HouseStyle) Code() int      { return int(v) }
func (v HouseStyle) String() string { return HouseStyleTable.Label(v) }

type KitchenQual uint8

const (
	KitchenQualFa KitchenQual = 0
	KitchenQualTA KitchenQual = 1
	KitchenQualGd KitchenQual = 2
	KitchenQualEx KitchenQual = 3
)

var KitchenQualTable = newTable(AttrKitchenQual,
	Entry[KitchenQual]{"Fa", KitchenQualFa},
	Entry[KitchenQual]{"TA", KitchenQualTA},
	Entry[KitchenQual]{"Gd", KitchenQualGd},
	Entry[KitchenQual]{"Ex", KitchenQualEx},
)

func (v KitchenQual) Code() int      { return int(v) }
func (v KitchenQual) String() string { return KitchenQualTable.Label(v) }

type HeatingQC uint8

const (
	HeatingQCOther HeatingQC = 0
	HeatingQCFa    HeatingQC = 1
	HeatingQCTA    HeatingQC = 2
	HeatingQCGd    HeatingQC = 3
	HeatingQCEx    HeatingQC = 4
)

var HeatingQCTable = newTable(AttrHeatingQC,
	Entry[HeatingQC]{"other", HeatingQCOther},
	Entry[HeatingQC]{"Fa", HeatingQCFa},
	Entry[HeatingQC]{"TA", HeatingQCTA},
	Entry[HeatingQC]{"Gd", HeatingQCGd},
	Entry[HeatingQC]{"Ex", HeatingQCEx},
)

func (v HeatingQC) Code() int      { return int(v) }
func (v HeatingQC) String() string { return HeatingQCTable.Label(v) }

type Functional uint8

const (
	FunctionalOther Functional = 0
	FunctionalMin2  Functional = 1
	FunctionalMod   Functional = 2
	FunctionalMin1  Functional = 3
	FunctionalTyp   Functional = 4
)

var FunctionalTable = newTable(AttrFunctional,
	Entry[Functional]{"other", FunctionalOther},
	Entry[Functional]{"Min2", FunctionalMin2},
	Entry[Functional]{"Mod", FunctionalMod},
	Entry[Functional]{"Min1", FunctionalMin1},
	Entry[Functional]{"Typ", FunctionalTyp},
)

func (v Functional) Code() int      { return int(v) }
func (v Functional) String() string { return FunctionalTable.Label(v) }

type BsmtExposure uint8

const (
	BsmtExposureNone BsmtExposure = 0
	BsmtExposureNo   BsmtExposure = 1
	BsmtExposureMn   BsmtExposure = 2
	BsmtExposureAv   BsmtExposure = 3
	BsmtExposureGd   BsmtExposure = 4
)

var BsmtExposureTable = newTable(AttrBsmtExposure,
	Entry[BsmtExposure]{"None", BsmtExposureNone},
	Entry[BsmtExposure]{"No", BsmtExposureNo},
	Entry[BsmtExposure]{"Mn", BsmtExposureMn},
	Entry[BsmtExposure]{"Av", BsmtExposureAv},
	Entry[BsmtExposure]{"Gd", BsmtExposureGd},
)

func (v BsmtExposure) Code() int      { return int(v) }
func (v BsmtExposure) String() string { return BsmtExposureTable.Label(v) }

type Exterior1st uint8

const (
	Exterior1stAsbShng Exterior1st = iota
	Exterior1stOther
	Exterior1stWdSdng
	Exterior1stWdShing
	Exterior1stMetalSd
	Exterior1stStucco
	Exterior1stHdBoard
	Exterior1stPlywood
	Exterior1stBrkFace
	Exterior1stCemntBd
	Exterior1stVinylSd
)

var Exterior1stTable = newTable(AttrExterior1st,
	Entry[Exterior1st]{"AsbShng", Exterior1stAsbShng},
	Entry[Exterior1st]{"other", Exterior1stOther},
	Entry[Exterior1st]{"Wd Sdng", Exterior1stWdSdng},
	Entry[Exterior1st]{"WdShing", Exterior1stWdShing},
	Entry[Exterior1st]{"MetalSd", Exterior1stMetalSd},
	Entry[Exterior1st]{"Stucco", Exterior1stStucco},
	Entry[Exterior1st]{"HdBoard", Exterior1stHdBoard},
	Entry[Exterior1st]{"Plywood", Exterior1stPlywood},
	Entry[Exterior1st]{"BrkFace", Exterior1stBrkFace},
	Entry[Exterior1st]{"CemntBd", Exterior1stCemntBd},
	Entry[Exterior1st]{"VinylSd", Exterior1stVinylSd},
)

func (v Exterior1st) Code() int      { return int(v) }
func (v Exterior1st) String() string { return Exterior1stTable.Label(v) }

type Foundation uint8

const (
	FoundationSlab   Foundation = 0
	FoundationBrkTil Foundation = 1
	FoundationCBlock Foundation = 2
	FoundationOther  Foundation = 3
	FoundationPConc  Foundation = 4
)

var FoundationTable = newTable(AttrFoundation,
	Entry[Foundation]{"Slab", FoundationSlab},
	Entry[Foundation]{"BrkTil", FoundationBrkTil},
	Entry[Foundation]{"CBlock", FoundationCBlock},
	Entry[Foundation]{"other", FoundationOther},
	Entry[Foundation]{"PConc", FoundationPConc},
)

func (v Foundation) Code() int      { return int(v) }
func (v Foundation) String() string { return FoundationTable.Label(v) }

type FireplaceQu uint8

const (
	FireplaceQuPo   FireplaceQu = 0
	FireplaceQuNone FireplaceQu = 1
	FireplaceQuFa   FireplaceQu = 2
	FireplaceQuTA   FireplaceQu = 3
	FireplaceQuGd   FireplaceQu = 4
	FireplaceQuEx   FireplaceQu = 5
)

var FireplaceQuTable = newTable(AttrFireplaceQu,
	Entry[FireplaceQu]{"Po", FireplaceQuPo},
	Entry[FireplaceQu]{"None", FireplaceQuNone},
	Entry[FireplaceQu]{"Fa", FireplaceQuFa},
	Entry[FireplaceQu]{"TA", FireplaceQuTA},
	Entry[FireplaceQu]{"Gd", FireplaceQuGd},
	Entry[FireplaceQu]{"Ex", FireplaceQuEx},
)

func (v FireplaceQu) Code() int      { return int(v) }
func (v FireplaceQu) String() string { return FireplaceQuTable.Label(v) }

type GarageType uint8

const (
	GarageTypeNone    GarageType = 0
	GarageTypeRareVar GarageType = 1
	GarageTypeDetchd  GarageType = 2
	GarageTypeBasment GarageType = 3
	GarageTypeAttchd  GarageType = 4
	GarageTypeBuiltIn GarageType = 5
)

var GarageTypeTable = newTable(AttrGarageType,
	Entry[GarageType]{"None", GarageTypeNone},
	Entry[GarageType]{"Rare_var", GarageTypeRareVar},
	Entry[GarageType]{"Detchd", GarageTypeDetchd},
	Entry[GarageType]{"Basment", GarageTypeBasment},
	Entry[GarageType]{"Attchd", GarageTypeAttchd},
	Entry[GarageType]{"BuiltIn", GarageTypeBuiltIn},
)

func (v GarageType) Code() int      { return int(v) }
func (v GarageType) String() string { return GarageTypeTable.Label(v) }

type GarageFinish uint8

const (
	GarageFinishNone GarageFinish = 0
	GarageFinishUnf  GarageFinish = 1
	GarageFinishRFn  GarageFinish = 2
	GarageFinishFin  GarageFinish = 3
)

var GarageFinishTable = newTable(AttrGarageFinish,
	Entry[GarageFinish]{"None", GarageFinishNone},
	Entry[GarageFinish]{"Unf", GarageFinishUnf},
	Entry[GarageFinish]{"RFn", GarageFinishRFn},
	Entry[GarageFinish]{"Fin", GarageFinishFin},
)

func (v GarageFinish) Code() int      { return int(v) }
func (v GarageFinish) String() string { return GarageFinishTable.Label(v) }

type SaleCondition uint8

const (
	SaleConditionAbnorml SaleCondition = 0
	SaleConditionRareVar SaleCondition = 1
	SaleConditionFamily  SaleCondition = 2
	SaleConditionNormal  SaleCondition = 3
	SaleConditionPartial SaleCondition = 4
)

var SaleConditionTable = newTable(AttrSaleCondition,
	Entry[SaleCondition]{"Abnorml", SaleConditionAbnorml},
	Entry[SaleCondition]{"Rare_var", SaleConditionRareVar},
	Entry[SaleCondition]{"Family", SaleConditionFamily},
	Entry[SaleCondition]{"Normal", SaleConditionNormal},
	Entry[SaleCondition]{"Partial", SaleConditionPartial},
)

func (v SaleCondition) Code() int      { return int(v) }
func (v SaleCondition) String() string { return SaleConditionTable.Label(v) }
