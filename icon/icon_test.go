package icon

import (
	"testing"

	"github.com/cbstream/cbstream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Live

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(target), ShouldBeEmpty)
		})

		Convey("It returns empty for an unregistered icon", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(99)), ShouldBeEmpty)
		})
	})
}
