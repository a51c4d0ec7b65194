package float128

// Constant data for the natural logarithm: the series coefficients,
// the lookup table of ln(t) - (t-1), and ln(2) split into two parts.
// All values are compile-time binary128 bit patterns (the decimal
// value follows each entry); they were produced by a minimax fit and
// a table generation run outside this package, and the accuracy
// guarantees of Log depend on reproducing them bit for bit. None of
// this data is ever mutated.

// Coefficients of the polynomial P such that, on
// [-1/128, +1/128],
//
//	log(1+z) = z - 0.5 z^2 + z^3 P(z)
//
// with peak relative error 1.2e-37. Ordered from the degree-15
// coefficient down to the degree-3 one, for Horner evaluation.
var logp = [13]Float128{
	{0x3FFB111FA6CD0A24, 0xF18CC4D616B52FE2}, // l15  6.668057591071739754844678883223432347481E-2
	{0xBFFB24A0D09D6DF5, 0x307CEFA7DCE419CB}, // l14  -7.144242754190814657241902218399056829264E-2
	{0x3FFB3B13B0E015DF, 0x952586EA703C0A32}, // l13  7.692307559897661630807048686258659316091E-2
	{0xBFFB55555501D424, 0x2ABC4CD1817A9E2A}, // l12  -8.333333211818065121250921925397567745734E-2
	{0x3FFB745D1745D297, 0xFCA77D048B595AEE}, // l11  9.090909090915566247008015301349979892689E-2
	{0xBFFB999999999A89, 0xA16D45E032B400DF}, // l10  -1.000000000000532974938900317952530453248E-1
	{0x3FFBC71C71C71C71, 0xC521DFBADAA44000}, // l9   1.111111111111111093947834982832456459186E-1
	{0xBFFBFFFFFFFFFFFF, 0xFE9A6B0BCC1095B3}, // l8   -1.249999999999999987884655626377588149000E-1
	{0x3FFC249249249249, 0x24924A0A48BA103F}, // l7   1.428571428571428571428808945895490721564E-1
	{0xBFFC555555555555, 0x555555D4C8E6392D}, // l6   -1.666666666666666666666798448356171665678E-1
	{0x3FFC999999999999, 0x99999999993B7E9B}, // l5   1.999999999999999999999999998515277861905E-1
	{0xBFFCFFFFFFFFFFFF, 0xFFFFFFFFFFDF79B7}, // l4   -2.499999999999999999999999999486853077002E-1
	{0x3FFD555555555555, 0x555555555555555B}, // l3   3.333333333333333333333333333333336096926E-1
}

// Lookup table of ln(t) - (t-1) for the reduction grid
//
//	t = 0.5 + (k+26)/128,  k = 0, ..., 91
//
// Entry zeroK (t = 1) is exactly zero; it doubles as the zero
// operand of the special-case divisions in Log.
var logtbl = [92]Float128{
	{0xBFFAC5641F4E350A, 0x0D32756EBA00BC34}, // -5.5345593589352099112142921677820359632418E-2
	{0xBFFAAADEEFACAF97, 0xD357DD6E688EBB14}, // -5.2108257402767124761784665198737642086148E-2
	{0xBFFA9157039C51EB, 0xE708164C759686A2}, // -4.8991686870576856279407775480686721935120E-2
	{0xBFFA78C6E138E20D, 0x831F698298ADDDD8}, // -4.5993270766361228596215288742353061431071E-2
	{0xBFFA61293B9998C1, 0xDAA5B035EAE273A8}, // -4.3110481649613269682442058976885699556950E-2
	{0xBFFA4A78F0E9AE71, 0xD852CDEC34784708}, // -4.0340872319076331310838085093194799765520E-2
	{0xBFFA34B1089A6DC9, 0x3C1DF5BB3B60554E}, // -3.7682072451780927439219005993827431503510E-2
	{0xBFFA1FCCB1AD35CA, 0x6ED5147BDB6DDCAF}, // -3.5131785416234343803903228503274262719586E-2
	{0xBFFA0BC74113F23D, 0xEF19C5A0FE396F41}, // -3.2687785249045246292687241862699949178831E-2
	{0xBFF9F138604D5862, 0x736C5BB53A44E1F4}, // -3.0347913785027239068190798397055267411813E-2
	{0xBFF9CC8E3659D9BC, 0xBECCA0CDF301431B}, // -2.8110077931525797884641940838507561326298E-2
	{0xBFF9A9877FF38809, 0x0913B020FA1820C9}, // -2.5972247078357715036426583294246819637618E-2
	{0xBFF9881BF932AF3D, 0xAC0C524848E3443E}, // -2.3932450635346084858612873953407168217307E-2
	{0xBFF968439C1DEC56, 0x8774D57DA945B5D1}, // -2.1988775689981395152022535153795155900240E-2
	{0xBFF949F69E456CF1, 0xB795F53BD2E406E6}, // -2.0139364778244501615441044267387667496733E-2
	{0xBFF92D2D6E7B80BF, 0x9142C507FB7A3D0C}, // -1.8382413762093794819267536615342902718324E-2
	{0xBFF911E0B2A8D1E0, 0xDDB9A631E830FD31}, // -1.6716169807550022358923589720001638093023E-2
	{0xBFF8F0128B756ABB, 0x9C8698F787A64EA2}, // -1.5138929457710992616226033183958974965355E-2
	{0xBFF8BF406B543DB1, 0xFB8292ECFC82062E}, // -1.3649036795397472900424896523305726435029E-2
	{0xBFF8913D8333B560, 0xDE553F6D9E1D9682}, // -1.2244881690473465543308397998034325468152E-2
	{0xBFF865FCB0159016, 0x2FA8234B72895951}, // -1.0924898127200937840689817557742469105693E-2
	{0xBFF83D712A49C201, 0xA471FA7BEB8A5AD0}, // -9.6875626072830301572839422532631079809328E-3
	{0xBFF8178E8227E47B, 0xDE338B41FC72DE82}, // -8.5313926245226231463436209313499745894157E-3
	{0xBFF7E89139DBD565, 0x94D82F7A81B1B252}, // -7.4549452072765973384933565912143044991706E-3
	{0xBFF7A727638446A2, 0x5007E9C5CCC062FB}, // -6.4568155251217050991200599386801665681310E-3
	{0xBFF76AC88DAD5B1B, 0xDFF50225C6B4C1CC}, // -5.5356355563671005131126851708522185605193E-3
	{0xBFF7335E5D594988, 0xAE1D5EA3ECCD2509}, // -4.6900728132525199028885749289712348829878E-3
	{0xBFF700D30AEAC0E0, 0xF46D4CEF69917D84}, // -3.9188291218610470766469347968659624282519E-3
	{0xBFF6A622BA40FD58, 0xBB4FA163C2165ECF}, // -3.2206394539524058873423550293617843896540E-3
	{0xBFF65409488E2F49, 0x1751639682E04716}, // -2.5942708080877805657374888909297113032132E-3
	{0xBFF60B316B3C740D, 0x1147FB37EA066E58}, // -2.0385211375711716729239156839929281289086E-3
	{0xBFF596E79BBB6597, 0x0DB827D7F8816358}, // -1.5522183228760777967376942769773768850872E-3
	{0xBFF52954293F6686, 0x6A2FA5D98288F315}, // -1.1342191863606077520036253234446621373191E-3
	{0xBFF49ABB50B78FA6, 0x3229080B5EC826E5}, // -7.8340854719967065861624024730268350459991E-4
	{0xBFF40576279D1111, 0xC05CF1D753622278}, // -4.9869831458030115699628274852562992756174E-4
	{0xBFF32494A3232AFA, 0x2E6D2F9E6059928F}, // -2.7902661731604211834685052867305795169688E-4
	{0xBFF202B2C49AC23A, 0x4F91D082DCE3DDCD}, // -1.2335696813916860754951146082826952093496E-4
	{0xBFF00157588DE712, 0x8CCC5A82F9DA00F5}, // -3.0677461025892873184042490943581654591817E-5
	{0x0000000000000000, 0x0000000000000000}, // k=38  0.0
	{0xBFEFFD594EF98770, 0x3C896FC6E23D7D2D}, // -3.0359557945051052537099938863236321874198E-5
	{0xBFF1FABA781FE0E1, 0x83092C59642A1549}, // -1.2081346403474584914595395755316412213151E-4
	{0xBFF31B93E0A93B95, 0x5B602ACE3A50FF89}, // -2.7044071846562177120083903771008342059094E-4
	{0xBFF3F593C61F33FE, 0xCC1C0FB0E10DD605}, // -4.7834133324631162897179240322783590830326E-4
	{0xBFF485E118050A81, 0x5BFA937F551BAC6E}, // -7.4363569786340080624467487620270965403695E-4
	{0xBFF5174E139A4607, 0x73961ABC236B4FA7}, // -1.0654639687057968333207323853366578860679E-3
	{0xBFF57A451DCD1C82, 0x7AE5D6704C12645B}, // -1.4429854811877171341298062134712230604279E-3
	{0xBFF5EB9E7FDD3AB3, 0x3D066D1D22299A1E}, // -1.8753781835651574193938679595797367137975E-3
	{0xBFF6359222B90A3E, 0x2F3B47D18459B437}, // -2.3618380914922506054347222273705859653658E-3
	{0xBFF67C50D3C85C5E, 0xDACCF913DF65D916}, // -2.9015787624124743013946600163375853631299E-3
	{0xBFF6C9F181F3CF81, 0x2DB0E32F2BA0DD4F}, // -3.4938307889254087318399313316921940859043E-3
	{0xBFF70F2D751A94B4, 0x641B664612E649BF}, // -4.1378413103128673800485306215154712148146E-3
	{0xBFF73CBA29CE64DF, 0x0A534BD59A1254BD}, // -4.8328735414488877044289435125365629849599E-3
	{0xBFF76D92C5B52A9C, 0x9AF42DD563C55B38}, // -5.5782063183564351739381962360253116934243E-3
	{0xBFF7A1AB70A438BC, 0xEA29E8107E9E4E89}, // -6.3731336597098858051938306767880719015261E-3
	{0xBFF7D8F891D50D1A, 0x161578001E0161EB}, // -7.2169643436165454612058905294782949315193E-3
	{0xBFF809B767120AA2, 0xAAE8D7330366D8E2}, // -8.1090214990427641365934846191367315083867E-3
	{0xBFF82881832F71A6, 0x99688E85BF3D5172}, // -9.0486422112807274112838713105168375482480E-3
	{0xBFF848D52AD0985F, 0xD6F9FB971A6518C1}, // -1.0035177140880864314674126398350812606841E-2
	{0xBFF86AAD07E00ADC, 0xB3FA238EFE090597}, // -1.1067990155502102718064936259435676477423E-2
	{0xBFF88E03DFE1708B, 0xC432693AA1CEC069}, // -1.2146457974158024928196575103115488672416E-2
	{0xBFF8B2D4933482E1, 0x982C26AF0781E1F4}, // -1.3269969823361415906628825374158424754308E-2
	{0xBFF8D91A1C5E4BC8, 0x5D1BFE291C34E659}, // -1.4437927104692837124388550722759686270765E-2
	{0xBFF90067C7AC3616, 0x1BC60EFAFC6F6E23}, // -1.5649743073340777659901053944852735064621E-2
	{0xBFF914F80C7316F1, 0xB955C4D1D9A2F21D}, // -1.6904842527181702880599758489058031645317E-2
	{0xBFF92A3B7EF7937B, 0x720E4A694AFCFBFD}, // -1.8202661505988007336096407340750378994209E-2
	{0xBFF9402FCD6F9B77, 0xB7EFFB7F411B3443}, // -1.9542647000370545390701192438691126552961E-2
	{0xBFF956D2B185D4A5, 0xC4DF67C563A3B4C5}, // -2.0924256670080119637427928803038530924742E-2
	{0xBFF96E21F00EA54E, 0x73647727C2B339EC}, // -2.2346958571309108496179613803760727786257E-2
	{0xBFF9861B58BFA006, 0x9398CFF36419851A}, // -2.3810230892650362330447187267648486279460E-2
	{0xBFF99EBCC5E93994, 0xEB0318BB78F0AB0F}, // -2.5313561699385640380910474255652501521033E-2
	{0xBFF9B8041C32B2EF, 0x29ED13F08680232F}, // -2.6856448685790244233704909690165496625399E-2
	{0xBFF9D1EF4A582237, 0x5237794D03657FC8}, // -2.8438398935154170008519274953860128449036E-2
	{0xBFF9EC7C48EA868D, 0x0B0ABC000F00B0F5}, // -3.0058928687233090922411781058956589863039E-2
	{0xBFFA03D48D08E9B2, 0x6B79C86AF23DF37B}, // -3.1717563112854831855692484086486099896614E-2
	{0xBFFA11B9E4A87075, 0x5CAAAE64F21ACB4D}, // -3.3413836095418743219397234253475252001090E-2
	{0xBFFA1FED35A597DF, 0x928EC217A5022D43}, // -3.5147290019036555862676702093393332533702E-2
	{0xBFFA2E6D8EC6378E, 0x5046042FF3C7F9E4}, // -3.6917475563073933027920505457688955423688E-2
	{0xBFFA3D3A0328DA95, 0x73B02FAA59A67184}, // -3.8723951502862058660874073462456610731178E-2
	{0xBFFA4C51AA2A2CF8, 0xFE319C15477C8E90}, // -4.0566284516358241168330505467000838017425E-2
	{0xBFFA5BB39F4B3302, 0x821CB8C55FE38888}, // -4.2444048996543693813649967076598766917965E-2
	{0xBFFA6B5F0218434D, 0x2EDEBD612C515E68}, // -4.4356826869355401653098777649745233339196E-2
	{0xBFFA7B52F610BCAE, 0x50A5B67D81F7E34F}, // -4.6304207416957323121106944474331029996141E-2
	{0xBFFA8B8EA28F7167, 0xB1E99B72BD7BF262}, // -4.8285787106164123613318093945035804818364E-2
	{0xBFFA9C1132B3C155, 0x94DD4C580919F784}, // -5.0301169421838218987124461766244507342648E-2
	{0xBFFAACD9D54B5D0B, 0x1C68651945F97B90}, // -5.2349964705088137924875459464622098310997E-2
	{0xBFFABDE7BCBCAC0E, 0x2179F6C1059CDACF}, // -5.4431789996103111613753440311680967840214E-2
	{0xBFFACF3A1EF1D09E, 0xC17A42642661C65E}, // -5.6546268881465384189752786409400404404794E-2
	{0xBFFAE0D0354443AF, 0x9259B35B04813CDC}, // -5.8693031345788023909329239565012647817664E-2
	{0xBFFAF2A93C6903E9, 0x7B1B614F982A873C}, // -6.0871713627532018185577188079210189048340E-2
	{0xBFFB02623A2EA964, 0xEAD9524D7C99F430}, // -6.3081958078862169742820420185833800925568E-2
	{0xBFFB0B909029FD8D, 0x6BDC9C7C23801EEA}, // -6.5323413029406789694910800219643791556918E-2
	{0xBFFB14DF43518E1A, 0xB4242837567F8D74}, // -6.7595732653791419081537811574227049288168E-2
}

// Index of the exactly-zero table entry (t = 1).
const zeroK = 38

// ln(2) = ln2a + ln2b with extended precision: ln2a is exactly
// representable in a short mantissa, so e*ln2a is error-free for
// every exponent e the format can produce, and ln2b carries the
// residual. Only the exponent term is split this way: it is the
// one term multiplied by a potentially large integer.
var ln2a = Float128{0x3FFE62E400000000, 0x0000000000000000} // 0.693145751953125
var ln2b = Float128{0x3FEB7F7D1CF79ABC, 0x9E3B39803F2F6AF4} // 1.4286068203094172321214581765680755001344E-6

var one = Float128{0x3FFF000000000000, 0x0000000000000000}
var negHalf = Float128{0xBFFE000000000000, 0x0000000000000000}

// Bounds of the band around 1 where the table is bypassed.
var bandLow = Float128{0x3FFEFC0000000000, 0x0000000000000000}  // 0.9921875
var bandHigh = Float128{0x3FFF020000000000, 0x0000000000000000} // 1.0078125
